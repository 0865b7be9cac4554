package repository

import (
	"context"

	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	domainRepo "github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) domainRepo.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *entity.AuditLog) error {
	return conn(ctx, r.db).Create(entry).Error
}

func (r *auditLogRepository) ListByEntity(ctx context.Context, entityName, entityID string) ([]entity.AuditLog, error) {
	var entries []entity.AuditLog
	err := conn(ctx, r.db).
		Where("entity = ? AND entity_id = ?", entityName, entityID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
