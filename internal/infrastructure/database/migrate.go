package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sangkips/hotel-billing-api/internal/config"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Models lists every entity managed by AutoMigrate, parents first.
func Models() []interface{} {
	return []interface{}{
		// Accounts
		&entity.Role{},
		&entity.UserAccount{},
		&entity.Employee{},

		// Catalogue
		&entity.TaxSlab{},
		&entity.Category{},
		&entity.Product{},
		&entity.ProductPriceHistory{},

		// Billing
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.Payment{},

		// System
		&entity.AuditLog{},
		&entity.IdempotencyKey{},
	}
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}

// SeedDefaultData creates the built-in roles and, when configured, the admin account.
func SeedDefaultData(ctx context.Context, db *gorm.DB, admin *config.AdminConfig, log *zap.Logger) error {
	db = db.WithContext(ctx)

	for _, name := range enum.Roles() {
		role := entity.Role{Name: name}
		if err := db.Where(entity.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}

	if admin == nil || admin.Email == "" || admin.Password == "" {
		log.Info("admin seed skipped, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(admin.Email))

	var existing entity.UserAccount
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Info("admin account already exists", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin account: %w", err)
	}

	var adminRole entity.Role
	if err := db.Where("name = ?", enum.RoleAdmin).First(&adminRole).Error; err != nil {
		return fmt.Errorf("lookup admin role: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	name := admin.Name
	if name == "" {
		name = "Administrator"
	}

	account := entity.UserAccount{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     name,
		RoleID:       adminRole.ID,
		IsActive:     true,
	}
	if err := db.Create(&account).Error; err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	log.Info("admin account created", zap.String("email", email))
	return nil
}
