package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/repository"
)

// Audit actions
const (
	AuditInvoiceCreated   = "invoice.created"
	AuditInvoicePaid      = "invoice.paid"
	AuditInvoiceCancelled = "invoice.cancelled"
	AuditInvoiceStatus    = "invoice.status_changed"
)

// AuditService writes and reads the audit trail
type AuditService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record appends an entry. When ctx carries a transaction the entry commits
// or rolls back with it.
func (s *AuditService) Record(ctx context.Context, actorID *uuid.UUID, action, entityName, entityID string, payload interface{}) error {
	entry := &entity.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   entityName,
		EntityID: entityID,
	}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode audit payload: %w", err)
		}
		entry.Payload = string(raw)
	}

	return s.auditRepo.Create(ctx, entry)
}

// History returns the audit entries of one entity, oldest first.
func (s *AuditService) History(ctx context.Context, entityName, entityID string) ([]entity.AuditLog, error) {
	return s.auditRepo.ListByEntity(ctx, entityName, entityID)
}
