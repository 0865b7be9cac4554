package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/application/service"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"github.com/sangkips/hotel-billing-api/pkg/money"
	"github.com/shopspring/decimal"
)

// InvoiceItemResponse is one invoice line as returned to clients
type InvoiceItemResponse struct {
	ID               uuid.UUID   `json:"id"`
	InvoiceID        uuid.UUID   `json:"invoice_id"`
	ProductID        *uuid.UUID  `json:"product_id"`
	Description      *string     `json:"description"`
	Quantity         json.Number `json:"quantity"`
	UnitPrice        json.Number `json:"unit_price"`
	TaxRate          json.Number `json:"tax_rate"`
	DiscountAmount   json.Number `json:"discount_amount"`
	LineTotalExclTax json.Number `json:"line_total_excl_tax"`
	LineTaxAmount    json.Number `json:"line_tax_amount"`
	LineTotalInclTax json.Number `json:"line_total_incl_tax"`
	LineTotal        json.Number `json:"line_total"`
}

// InvoiceResponse is the invoice body returned by create and get
type InvoiceResponse struct {
	ID            uuid.UUID             `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	CreatedBy     *uuid.UUID            `json:"created_by"`
	TableNumber   *string               `json:"table_number"`
	OrderType     enum.OrderType        `json:"order_type"`
	EmployeeID    *uuid.UUID            `json:"employee_id"`
	Status        enum.InvoiceStatus    `json:"status"`
	Notes         *string               `json:"notes,omitempty"`
	CreatedAt     *string               `json:"created_at"`
	TotalAmount   json.Number           `json:"total_amount"`
	Items         []InvoiceItemResponse `json:"items"`
}

// InvoiceSummaryResponse is an invoice header used in listings
type InvoiceSummaryResponse struct {
	ID            uuid.UUID          `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	TableNumber   *string            `json:"table_number"`
	OrderType     enum.OrderType     `json:"order_type"`
	EmployeeID    *uuid.UUID         `json:"employee_id"`
	Status        enum.InvoiceStatus `json:"status"`
	CreatedAt     *string            `json:"created_at"`
	TotalAmount   json.Number        `json:"total_amount"`
}

// Amount renders a monetary value as a JSON number with two decimals
func Amount(d decimal.Decimal) json.Number {
	return json.Number(money.Format(d))
}

func timestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// NewInvoiceResponse maps an invoice with its resolved lines
func NewInvoiceResponse(detail *service.InvoiceDetail) *InvoiceResponse {
	inv := detail.Invoice
	items := make([]InvoiceItemResponse, len(detail.Lines))
	for i, line := range detail.Lines {
		items[i] = InvoiceItemResponse{
			ID:               line.ID,
			InvoiceID:        line.InvoiceID,
			ProductID:        line.ProductID,
			Description:      line.Description,
			Quantity:         Amount(line.Quantity),
			UnitPrice:        Amount(line.UnitPrice),
			TaxRate:          Amount(line.TaxRate),
			DiscountAmount:   Amount(line.DiscountAmount),
			LineTotalExclTax: Amount(line.Totals.ExclTax),
			LineTaxAmount:    Amount(line.Totals.TaxAmount),
			LineTotalInclTax: Amount(line.Totals.InclTax),
			LineTotal:        Amount(line.Totals.InclTax),
		}
	}

	return &InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CreatedBy:     inv.CreatedBy,
		TableNumber:   inv.TableNumber,
		OrderType:     inv.OrderType,
		EmployeeID:    inv.EmployeeID,
		Status:        inv.Status,
		Notes:         inv.Notes,
		CreatedAt:     timestamp(inv.CreatedAt),
		TotalAmount:   Amount(inv.TotalAmount),
		Items:         items,
	}
}

// NewInvoiceSummaries maps invoice headers for a listing
func NewInvoiceSummaries(invoices []entity.Invoice) []InvoiceSummaryResponse {
	out := make([]InvoiceSummaryResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = InvoiceSummaryResponse{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			TableNumber:   inv.TableNumber,
			OrderType:     inv.OrderType,
			EmployeeID:    inv.EmployeeID,
			Status:        inv.Status,
			CreatedAt:     timestamp(inv.CreatedAt),
			TotalAmount:   Amount(inv.TotalAmount),
		}
	}
	return out
}

// PaymentReceiptResponse is returned after an invoice is paid
type PaymentReceiptResponse struct {
	ID            uuid.UUID          `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	Status        enum.InvoiceStatus `json:"status"`
	Amount        json.Number        `json:"amount"`
	PaidAt        string             `json:"paid_at"`
	PaymentID     uuid.UUID          `json:"payment_id"`
	Method        string             `json:"method"`
	Reference     string             `json:"reference"`
}

// NewPaymentReceiptResponse maps a payment receipt
func NewPaymentReceiptResponse(r *service.PaymentReceipt) *PaymentReceiptResponse {
	return &PaymentReceiptResponse{
		ID:            r.InvoiceID,
		InvoiceNumber: r.InvoiceNumber,
		Status:        r.Status,
		Amount:        Amount(r.Amount),
		PaidAt:        r.PaidAt.UTC().Format(time.RFC3339),
		PaymentID:     r.PaymentID,
		Method:        r.Method,
		Reference:     r.Reference,
	}
}

// PaymentResponse is a stored payment
type PaymentResponse struct {
	ID         uuid.UUID   `json:"id"`
	InvoiceID  uuid.UUID   `json:"invoice_id"`
	PaidAt     string      `json:"paid_at"`
	Amount     json.Number `json:"amount"`
	Method     string      `json:"method"`
	Reference  string      `json:"reference"`
	ReceivedBy *uuid.UUID  `json:"received_by,omitempty"`
}

// NewPaymentResponses maps stored payments
func NewPaymentResponses(payments []entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = PaymentResponse{
			ID:         p.ID,
			InvoiceID:  p.InvoiceID,
			PaidAt:     p.PaidAt.UTC().Format(time.RFC3339),
			Amount:     Amount(p.Amount),
			Method:     p.Method,
			Reference:  p.Reference,
			ReceivedBy: p.ReceivedBy,
		}
	}
	return out
}
