package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	domainRepo "github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"github.com/sangkips/hotel-billing-api/internal/infrastructure/database"
	"gorm.io/gorm"
)

type userAccountRepository struct {
	db *gorm.DB
}

// NewUserAccountRepository creates a new user account repository
func NewUserAccountRepository(db *gorm.DB) domainRepo.UserAccountRepository {
	return &userAccountRepository{db: db}
}

func (r *userAccountRepository) Create(ctx context.Context, user *entity.UserAccount) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return database.TranslateError(conn(ctx, r.db).Omit("Role").Create(user).Error)
}

func (r *userAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.UserAccount, error) {
	var user entity.UserAccount
	err := conn(ctx, r.db).Preload("Role").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userAccountRepository) GetByEmail(ctx context.Context, email string) (*entity.UserAccount, error) {
	var user entity.UserAccount
	err := conn(ctx, r.db).
		Preload("Role").
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) domainRepo.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	return database.TranslateError(conn(ctx, r.db).Create(role).Error)
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	err := conn(ctx, r.db).Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &role, err
}

func (r *roleRepository) List(ctx context.Context) ([]entity.Role, error) {
	var roles []entity.Role
	err := conn(ctx, r.db).Order("name ASC").Find(&roles).Error
	return roles, err
}
