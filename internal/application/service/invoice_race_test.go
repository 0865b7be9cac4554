package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/config"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"github.com/sangkips/hotel-billing-api/internal/domain/repository"
	infraRepo "github.com/sangkips/hotel-billing-api/internal/infrastructure/repository"
	"github.com/sangkips/hotel-billing-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// racingInvoiceRepo lets another writer move the invoice to winner just
// before the conditional update runs, so the update matches no row.
type racingInvoiceRepo struct {
	repository.InvoiceRepository
	winner enum.InvoiceStatus
	calls  int
}

func (r *racingInvoiceRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from []enum.InvoiceStatus, to enum.InvoiceStatus) (bool, error) {
	r.calls++
	if _, err := r.InvoiceRepository.TransitionStatus(ctx, id, from, r.winner); err != nil {
		return false, err
	}
	return false, nil
}

func TestPayInvoiceLosesRace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{InvoiceNumber: "INV-RACE", Items: scenarioItems()})
	require.NoError(t, err)

	racing := &racingInvoiceRepo{
		InvoiceRepository: infraRepo.NewInvoiceRepository(env.db),
		winner:            enum.InvoiceStatusCancelled,
	}
	svc := NewInvoiceService(
		infraRepo.NewTransactor(env.db),
		racing,
		infraRepo.NewPaymentRepository(env.db),
		infraRepo.NewProductRepository(env.db),
		env.query,
		env.audit,
		config.BillingConfig{},
		env.metrics,
		zap.NewNop(),
	)

	_, err = svc.PayInvoice(ctx, &PayInvoiceInput{InvoiceID: created.Invoice.ID})
	require.Error(t, err)
	assert.Equal(t, 1, racing.calls)
	assert.True(t, apperror.IsConflict(err))
	assert.Equal(t, "Invoice cannot be paid in status cancelled", apperror.GetAppError(err).Message)

	assert.Zero(t, countRows(t, env, &entity.Payment{}))

	payments, err := env.payments.ListByInvoice(ctx, created.Invoice.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestPayInvoiceLosesRaceToPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{InvoiceNumber: "INV-RACE-2", Items: scenarioItems()})
	require.NoError(t, err)

	svc := NewInvoiceService(
		infraRepo.NewTransactor(env.db),
		&racingInvoiceRepo{InvoiceRepository: infraRepo.NewInvoiceRepository(env.db), winner: enum.InvoiceStatusPaid},
		infraRepo.NewPaymentRepository(env.db),
		infraRepo.NewProductRepository(env.db),
		env.query,
		env.audit,
		config.BillingConfig{},
		env.metrics,
		zap.NewNop(),
	)

	_, err = svc.PayInvoice(ctx, &PayInvoiceInput{InvoiceID: created.Invoice.ID})
	require.Error(t, err)
	assert.Equal(t, "Invoice is already paid", apperror.GetAppError(err).Message)
	assert.Zero(t, countRows(t, env, &entity.Payment{}))
}
