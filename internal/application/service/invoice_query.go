package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"github.com/sangkips/hotel-billing-api/pkg/apperror"
	"github.com/sangkips/hotel-billing-api/pkg/money"
	"github.com/sangkips/hotel-billing-api/pkg/pagination"
)

// InvoiceLine is a stored item together with its resolved totals
type InvoiceLine struct {
	entity.InvoiceItem
	Totals money.LineTotals
}

// InvoiceDetail is an invoice with its lines
type InvoiceDetail struct {
	Invoice entity.Invoice
	Lines   []InvoiceLine
}

// ResolveLineTotals pairs every item with its derived amounts. Stored values
// are used as-is; missing ones are recomputed.
func ResolveLineTotals(items []entity.InvoiceItem) []InvoiceLine {
	lines := make([]InvoiceLine, len(items))
	for i := range items {
		lines[i] = InvoiceLine{
			InvoiceItem: items[i],
			Totals:      items[i].ResolvedTotals(),
		}
	}
	return lines
}

// InvoiceQueryService handles invoice reads
type InvoiceQueryService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceQueryService creates a new invoice query service
func NewInvoiceQueryService(invoiceRepo repository.InvoiceRepository) *InvoiceQueryService {
	return &InvoiceQueryService{invoiceRepo: invoiceRepo}
}

// GetInvoice loads an invoice and its items in one read
func (s *InvoiceQueryService) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceDetail, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	items := invoice.Items
	invoice.Items = nil

	return &InvoiceDetail{
		Invoice: *invoice,
		Lines:   ResolveLineTotals(items),
	}, nil
}

// InvoiceListInput represents filters for listing invoices
type InvoiceListInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.InvoiceStatus
	OrderType  *enum.OrderType
	EmployeeID *uuid.UUID
	From       *time.Time
	To         *time.Time
	SortOrder  string
}

// ListInvoices returns a page of invoice headers
func (s *InvoiceQueryService) ListInvoices(ctx context.Context, input *InvoiceListInput) ([]entity.Invoice, *pagination.Pagination, error) {
	params := input.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	invoices, total, err := s.invoiceRepo.List(ctx, &repository.InvoiceFilterParams{
		Pagination: params,
		Search:     input.Search,
		Status:     input.Status,
		OrderType:  input.OrderType,
		EmployeeID: input.EmployeeID,
		StartDate:  input.From,
		EndDate:    input.To,
		SortOrder:  input.SortOrder,
	})
	if err != nil {
		return nil, nil, apperror.NewInternalError(err)
	}

	return invoices, pagination.NewPagination(params.Page, params.PerPage, total), nil
}
