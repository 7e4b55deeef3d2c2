package postgres

import (
	"context"
	"strings"

	"fryfinder/internal/domain/entity"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/repository"
	"fryfinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// CreateAdmin persists a new admin account. Emails are stored lowercased.
func (repo *adminRepository) CreateAdmin(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)
	adminM.Email = strings.ToLower(adminM.Email)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAdminEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.Email = adminM.Email
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// FindAdminByID retrieves an admin by its unique ID.
func (repo *adminRepository) FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&adminM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by ID")
	}

	return toAdminDomain(&adminM), nil
}

// FindAdminByEmail retrieves an admin by email (case-insensitive).
func (repo *adminRepository) FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&adminM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminDomain(&adminM), nil
}

// --- Mapper Functions ---

// toAdminDomain converts a GORM AdminModel to a domain Admin entity.
func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		SuperAdmin:   data.SuperAdmin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAdminDomain converts a domain Admin entity to a GORM AdminModel.
func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		SuperAdmin:   data.SuperAdmin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
