package impl

import (
	"context"
	"log/slog"

	deliverycontext "fryfinder/internal/delivery/context"
	"fryfinder/internal/domain/entity"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/repository"
	"fryfinder/internal/domain/service"
	"fryfinder/internal/errors"
	"fryfinder/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService. It receives all dependencies as interfaces.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new admin account with a hashed password.
func (srv *adminService) Register(ctx context.Context, input *usecase.RegisterAdminInput) (*usecase.RegisterAdminOutput, error) {
	srv.log(ctx).Info("Starting admin registration", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	admin := &entity.Admin{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	}

	if err := srv.adminRepo.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrAdminEmailTaken) {
			return nil, domainerrors.ErrAdminAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create admin")
	}

	return &usecase.RegisterAdminOutput{Admin: admin}, nil
}

// Login verifies credentials and issues access and refresh tokens.
// Unknown email and wrong password produce the same error so that the
// response does not reveal which part failed.
func (srv *adminService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	admin, err := srv.adminRepo.FindAdminByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up admin for login")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(admin.ID, admin.Roles())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("admin logged in", slog.String("admin_id", admin.ID.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        admin,
	}, nil
}

// CurrentAdmin retrieves the admin identified by a validated token.
func (srv *adminService) CurrentAdmin(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	admin, err := srv.adminRepo.FindAdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to load current admin")
	}

	return admin, nil
}
