package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/config"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"github.com/sangkips/hotel-billing-api/internal/logger"
	"github.com/sangkips/hotel-billing-api/internal/metrics"
	"github.com/sangkips/hotel-billing-api/pkg/apperror"
	"github.com/sangkips/hotel-billing-api/pkg/money"
	"github.com/sangkips/hotel-billing-api/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultPaymentMethod = "cash"
	maxInvoiceNumberLen  = 100

	// numeric(precision, 2) of the invoice_items amount columns
	amountPrecision  int32 = 12
	taxRatePrecision int32 = 5
	auditEntityInvoice   = "invoice"
)

// InvoiceService handles invoice commands: creation and lifecycle changes
type InvoiceService struct {
	tx          repository.Transactor
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	productRepo repository.ProductRepository
	query       *InvoiceQueryService
	audit       *AuditService
	billing     config.BillingConfig
	metrics     *metrics.Metrics
	log         *zap.Logger
	now         func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	tx repository.Transactor,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	productRepo repository.ProductRepository,
	query *InvoiceQueryService,
	audit *AuditService,
	billing config.BillingConfig,
	m *metrics.Metrics,
	log *zap.Logger,
) *InvoiceService {
	if billing.DefaultPaymentMethod == "" {
		billing.DefaultPaymentMethod = defaultPaymentMethod
	}
	if billing.PaymentReferencePrefix == "" {
		billing.PaymentReferencePrefix = utils.DefaultPaymentReferencePrefix
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoiceService{
		tx:          tx,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		productRepo: productRepo,
		query:       query,
		audit:       audit,
		billing:     billing,
		metrics:     m,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// InvoiceItemInput represents one requested line
type InvoiceItemInput struct {
	ProductID      *uuid.UUID
	Description    *string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	TaxRate        decimal.Decimal
	DiscountAmount *decimal.Decimal
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	InvoiceNumber string
	CreatedBy     *uuid.UUID
	TableNumber   *string
	OrderType     string
	EmployeeID    *uuid.UUID
	Notes         *string
	Items         []InvoiceItemInput
}

func (in *CreateInvoiceInput) validate() (enum.OrderType, error) {
	var fieldErrors []apperror.FieldError

	number := strings.TrimSpace(in.InvoiceNumber)
	switch {
	case number == "":
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "invoice_number", Message: "invoice_number is required"})
	case len(number) > maxInvoiceNumberLen:
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "invoice_number", Message: "invoice_number is too long"})
	}

	orderType, err := enum.ParseOrderType(in.OrderType)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "order_type", Message: "order_type must be one of dine-in, takeaway, delivery"})
	}

	if in.Items == nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "items is required"})
	}
	for i, it := range in.Items {
		fieldErrors = append(fieldErrors, it.validate(i)...)
	}

	if len(fieldErrors) > 0 {
		return "", apperror.NewValidationError(fieldErrors)
	}
	return orderType, nil
}

type itemAmount struct {
	name      string
	value     decimal.Decimal
	precision int32
}

// validate rejects amounts the item columns would round or overflow
func (it *InvoiceItemInput) validate(index int) []apperror.FieldError {
	amounts := []itemAmount{
		{"quantity", it.Quantity, amountPrecision},
		{"unit_price", it.UnitPrice, amountPrecision},
		{"tax_rate", it.TaxRate, taxRatePrecision},
	}
	if it.DiscountAmount != nil {
		amounts = append(amounts, itemAmount{"discount_amount", *it.DiscountAmount, amountPrecision})
	}

	var fieldErrors []apperror.FieldError
	for _, a := range amounts {
		if err := money.CheckColumn(a.value, a.precision); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].%s", index, a.name),
				Message: a.name + " " + err.Error(),
			})
		}
	}
	return fieldErrors
}

// CreateInvoice persists an invoice and its items atomically and returns the
// stored result. The invoice is issued in the finalized state.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*InvoiceDetail, error) {
	orderType, err := input.validate()
	if err != nil {
		s.metrics.OperationFailed("create_invoice", "validation")
		return nil, err
	}

	invoice := &entity.Invoice{
		InvoiceNumber: strings.TrimSpace(input.InvoiceNumber),
		CreatedBy:     input.CreatedBy,
		TableNumber:   input.TableNumber,
		OrderType:     orderType,
		EmployeeID:    input.EmployeeID,
		Status:        enum.InvoiceStatusFinalized,
		TotalAmount:   decimal.Zero,
		Notes:         input.Notes,
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		names, err := s.productNames(ctx, input.Items)
		if err != nil {
			return err
		}

		if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
			return err
		}

		items := make([]entity.InvoiceItem, len(input.Items))
		lineTotals := make([]decimal.Decimal, len(input.Items))
		for i, in := range input.Items {
			items[i] = buildItem(invoice.ID, i+1, in, names)
			lineTotals[i] = items[i].ApplyTotals().InclTax
		}

		if err := s.invoiceRepo.CreateItems(ctx, items); err != nil {
			return err
		}

		invoice.TotalAmount = money.Sum(lineTotals...)
		if err := s.invoiceRepo.UpdateTotal(ctx, invoice.ID, invoice.TotalAmount); err != nil {
			return err
		}

		return s.audit.Record(ctx, input.CreatedBy, AuditInvoiceCreated, auditEntityInvoice, invoice.ID.String(), map[string]interface{}{
			"invoice_number": invoice.InvoiceNumber,
			"items":          len(items),
			"total_amount":   money.Format(invoice.TotalAmount),
		})
	})
	if err != nil {
		return nil, s.createError(ctx, invoice.InvoiceNumber, err)
	}

	s.metrics.InvoiceCreated(orderType.String(), invoice.TotalAmount)
	logger.FromContextOr(ctx, s.log).Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("total_amount", money.Format(invoice.TotalAmount)),
	)

	return s.query.GetInvoice(ctx, invoice.ID)
}

func (s *InvoiceService) createError(ctx context.Context, number string, err error) error {
	if repository.IsDuplicateKey(err) {
		s.metrics.OperationFailed("create_invoice", "conflict")
		return apperror.NewConstraintError("Invoice number already exists", err)
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	s.metrics.OperationFailed("create_invoice", "internal")
	logger.FromContextOr(ctx, s.log).Error("create invoice failed",
		zap.String("invoice_number", number),
		zap.Error(err),
	)
	return apperror.NewInternalError(err)
}

// productNames looks up names for items that reference a product but carry
// no description. Unknown product ids are ignored.
func (s *InvoiceService) productNames(ctx context.Context, items []InvoiceItemInput) (map[uuid.UUID]string, error) {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, it := range items {
		if it.ProductID == nil || hasText(it.Description) || seen[*it.ProductID] {
			continue
		}
		seen[*it.ProductID] = true
		ids = append(ids, *it.ProductID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}

func buildItem(invoiceID uuid.UUID, lineNo int, in InvoiceItemInput, names map[uuid.UUID]string) entity.InvoiceItem {
	discount := decimal.Zero
	if in.DiscountAmount != nil {
		discount = *in.DiscountAmount
	}

	description := in.Description
	if !hasText(description) && in.ProductID != nil {
		if name, ok := names[*in.ProductID]; ok {
			description = &name
		}
	}

	return entity.InvoiceItem{
		InvoiceID:      invoiceID,
		LineNo:         lineNo,
		ProductID:      in.ProductID,
		Description:    description,
		Quantity:       in.Quantity,
		UnitPrice:      in.UnitPrice,
		TaxRate:        in.TaxRate,
		DiscountAmount: discount,
	}
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// PayInvoiceInput represents the pay invoice input
type PayInvoiceInput struct {
	InvoiceID uuid.UUID
	Method    string
	ActorID   *uuid.UUID
}

// PaymentReceipt is the outcome of a successful payment
type PaymentReceipt struct {
	InvoiceID     uuid.UUID
	InvoiceNumber string
	Status        enum.InvoiceStatus
	Amount        decimal.Decimal
	PaidAt        time.Time
	PaymentID     uuid.UUID
	Method        string
	Reference     string
}

// PayInvoice marks a finalized or served invoice as paid and records the
// payment for its full total. Paying twice is a conflict.
func (s *InvoiceService) PayInvoice(ctx context.Context, input *PayInvoiceInput) (*PaymentReceipt, error) {
	method := strings.TrimSpace(input.Method)
	if method == "" {
		method = s.billing.DefaultPaymentMethod
	}

	var receipt *PaymentReceipt
	var from enum.InvoiceStatus
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		invoice, prev, err := s.transition(ctx, input.InvoiceID, enum.TriggerPay)
		if err != nil {
			return err
		}
		from = prev

		payment := &entity.Payment{
			InvoiceID:  invoice.ID,
			PaidAt:     s.now(),
			Amount:     invoice.TotalAmount,
			Method:     method,
			Reference:  utils.PaymentReference(s.billing.PaymentReferencePrefix, invoice.InvoiceNumber),
			ReceivedBy: input.ActorID,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return err
		}

		if err := s.audit.Record(ctx, input.ActorID, AuditInvoicePaid, auditEntityInvoice, invoice.ID.String(), map[string]interface{}{
			"from":       from.String(),
			"payment_id": payment.ID.String(),
			"amount":     money.Format(payment.Amount),
			"method":     payment.Method,
		}); err != nil {
			return err
		}

		receipt = &PaymentReceipt{
			InvoiceID:     invoice.ID,
			InvoiceNumber: invoice.InvoiceNumber,
			Status:        enum.InvoiceStatusPaid,
			Amount:        payment.Amount,
			PaidAt:        payment.PaidAt,
			PaymentID:     payment.ID,
			Method:        payment.Method,
			Reference:     payment.Reference,
		}
		return nil
	})
	if err != nil {
		return nil, s.commandError(ctx, "pay_invoice", input.InvoiceID, err)
	}

	s.metrics.StatusTransition(from.String(), receipt.Status.String())
	s.metrics.PaymentRecorded(receipt.Method, receipt.Amount)
	logger.FromContextOr(ctx, s.log).Info("invoice paid",
		zap.String("invoice_id", receipt.InvoiceID.String()),
		zap.String("payment_id", receipt.PaymentID.String()),
		zap.String("amount", money.Format(receipt.Amount)),
	)

	return receipt, nil
}

// CancelInvoice moves an unpaid invoice to cancelled
func (s *InvoiceService) CancelInvoice(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*InvoiceDetail, error) {
	var from enum.InvoiceStatus
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		invoice, prev, err := s.transition(ctx, id, enum.TriggerCancel)
		if err != nil {
			return err
		}
		from = prev
		return s.audit.Record(ctx, actorID, AuditInvoiceCancelled, auditEntityInvoice, invoice.ID.String(), map[string]string{
			"from": from.String(),
		})
	})
	if err != nil {
		return nil, s.commandError(ctx, "cancel_invoice", id, err)
	}
	s.metrics.StatusTransition(from.String(), enum.InvoiceStatusCancelled.String())

	return s.query.GetInvoice(ctx, id)
}

// UpdateInvoiceStatus advances an invoice along draft, preparing, served and
// finalized. Paid and cancelled are reachable only through PayInvoice and
// CancelInvoice.
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, target enum.InvoiceStatus, actorID *uuid.UUID) (*InvoiceDetail, error) {
	switch target {
	case enum.InvoiceStatusPaid:
		return nil, apperror.NewBadRequestError("Use the pay endpoint to mark an invoice as paid")
	case enum.InvoiceStatusCancelled:
		return nil, apperror.NewBadRequestError("Use the cancel endpoint to cancel an invoice")
	}

	trigger, ok := enum.TriggerFor(target)
	if !ok {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Invoice cannot be moved to status %s", target))
	}

	var from enum.InvoiceStatus
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		invoice, prev, err := s.transition(ctx, id, trigger)
		if err != nil {
			return err
		}
		from = prev
		return s.audit.Record(ctx, actorID, AuditInvoiceStatus, auditEntityInvoice, invoice.ID.String(), map[string]string{
			"from": from.String(),
			"to":   target.String(),
		})
	})
	if err != nil {
		return nil, s.commandError(ctx, "update_invoice_status", id, err)
	}
	s.metrics.StatusTransition(from.String(), target.String())

	return s.query.GetInvoice(ctx, id)
}

// transition checks the lifecycle guard and applies the change with a
// conditional update so concurrent callers cannot both succeed. It must run
// inside a transaction.
func (s *InvoiceService) transition(ctx context.Context, id uuid.UUID, trigger enum.InvoiceTrigger) (*entity.Invoice, enum.InvoiceStatus, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", apperror.NewNotFoundError("Invoice")
	}

	from := invoice.Status
	next, err := from.Transition(trigger)
	if err != nil {
		return nil, from, transitionConflict(trigger, from)
	}

	changed, err := s.invoiceRepo.TransitionStatus(ctx, id, enum.StatusesPermitting(trigger), next)
	if err != nil {
		return nil, from, err
	}
	if !changed {
		// another request moved the invoice first; report what it became
		current, err := s.invoiceRepo.GetByID(ctx, id)
		if err != nil {
			return nil, from, err
		}
		if current != nil {
			from = current.Status
		}
		return nil, from, transitionConflict(trigger, from)
	}

	invoice.Status = next
	return invoice, from, nil
}

func transitionConflict(trigger enum.InvoiceTrigger, from enum.InvoiceStatus) error {
	switch trigger {
	case enum.TriggerPay:
		if from == enum.InvoiceStatusPaid {
			return apperror.NewConflictError("Invoice is already paid")
		}
		return apperror.NewConflictError(fmt.Sprintf("Invoice cannot be paid in status %s", from))
	case enum.TriggerCancel:
		if from == enum.InvoiceStatusCancelled {
			return apperror.NewConflictError("Invoice is already cancelled")
		}
		return apperror.NewConflictError(fmt.Sprintf("Invoice cannot be cancelled in status %s", from))
	}
	return apperror.NewConflictError(fmt.Sprintf("Invoice cannot %s in status %s", trigger, from))
}

func (s *InvoiceService) commandError(ctx context.Context, operation string, id uuid.UUID, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch {
		case apperror.IsNotFound(appErr):
			s.metrics.OperationFailed(operation, "not_found")
		case apperror.IsConflict(appErr):
			s.metrics.OperationFailed(operation, "conflict")
		}
		return appErr
	}

	s.metrics.OperationFailed(operation, "internal")
	logger.FromContextOr(ctx, s.log).Error(operation+" failed",
		zap.String("invoice_id", id.String()),
		zap.Error(err),
	)
	return apperror.NewInternalError(err)
}
