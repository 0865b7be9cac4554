package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
)

// UserAccountRepository defines the interface for user account data operations
type UserAccountRepository interface {
	Create(ctx context.Context, user *entity.UserAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.UserAccount, error)
	GetByEmail(ctx context.Context, email string) (*entity.UserAccount, error)
}

// RoleRepository defines the interface for role data operations
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	List(ctx context.Context) ([]entity.Role, error)
}
