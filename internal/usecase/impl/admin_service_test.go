package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fryfinder/internal/domain/entity"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/repository"
	mockRepo "fryfinder/internal/mocks/repository"
	mockSvc "fryfinder/internal/mocks/service"
	"fryfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	adminRepo    *mockRepo.MockAdminRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(AdminServiceParams{
		AdminRepo:    adminRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return adminServiceFixtures{
		service:      service,
		adminRepo:    adminRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAdminService_Register_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.RegisterAdminInput{
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.adminRepo.EXPECT().
		CreateAdmin(ctx, mock.AnythingOfType("*entity.Admin")).
		Run(func(ctx context.Context, admin *entity.Admin) {
			admin.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.Admin.Email)
	assert.Equal(t, "hashed_password", output.Admin.PasswordHash)
	assert.False(t, output.Admin.SuperAdmin)
}

func TestAdminService_Register_EmailTaken(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.RegisterAdminInput{
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.adminRepo.EXPECT().
		CreateAdmin(ctx, mock.AnythingOfType("*entity.Admin")).
		Return(repository.ErrAdminEmailTaken)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminAlreadyExists))
}

func TestAdminService_Login_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "hashed_password",
	}

	fx.adminRepo.EXPECT().FindAdminByEmail(ctx, admin.Email).Return(admin, nil)
	fx.hasher.EXPECT().Check("Password123!", admin.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(admin.ID, []string{entity.RoleAdmin}).
		Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    admin.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, admin.ID, output.Admin.ID)
}

func TestAdminService_Login_SuperAdminRoles(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        "super@example.com",
		PasswordHash: "hashed_password",
		SuperAdmin:   true,
	}

	fx.adminRepo.EXPECT().FindAdminByEmail(ctx, admin.Email).Return(admin, nil)
	fx.hasher.EXPECT().Check("Password123!", admin.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(admin.ID, []string{entity.RoleAdmin, entity.RoleSuper}).
		Return("access", "refresh", nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    admin.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "hashed_password",
	}

	fx.adminRepo.EXPECT().FindAdminByEmail(ctx, admin.Email).Return(admin, nil)
	fx.hasher.EXPECT().Check("wrong", admin.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    admin.Email,
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAdminService_Login_UnknownEmailSameError(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.adminRepo.EXPECT().
		FindAdminByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAdminNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	// Same error as a wrong password, so the response reveals nothing.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAdminService_CurrentAdmin_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.adminRepo.EXPECT().FindAdminByID(ctx, id).Return(nil, repository.ErrAdminNotFound)

	admin, err := fx.service.CurrentAdmin(ctx, id)

	assert.Nil(t, admin)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminNotFound))
}
