package repository

import (
	"context"

	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
)

// AuditLogRepository defines the interface for audit trail operations
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entity.AuditLog) error
	ListByEntity(ctx context.Context, entityName, entityID string) ([]entity.AuditLog, error)
}
