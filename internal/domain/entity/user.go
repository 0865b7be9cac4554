package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserAccount is a login identity for staff
type UserAccount struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     *string   `gorm:"size:100" json:"username,omitempty"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FullName     string    `gorm:"size:255" json:"full_name"`
	RoleID       uint      `gorm:"not null;index" json:"role_id"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role"`
}

// BeforeCreate generates a UUID before creating a new user account
func (u *UserAccount) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserAccount model
func (UserAccount) TableName() string {
	return "user_accounts"
}

// HasRole checks if the account holds the named role
func (u *UserAccount) HasRole(roleName string) bool {
	return u.Role.Name == roleName
}

// Role is an authorization role
type Role struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Role model
func (Role) TableName() string {
	return "roles"
}
