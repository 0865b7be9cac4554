package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is one requested invoice line. Decimal fields accept
// JSON numbers or strings.
type InvoiceItemRequest struct {
	ProductID      *uuid.UUID       `json:"product_id"`
	Description    *string          `json:"description" binding:"omitempty,max=512"`
	Quantity       *decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice      *decimal.Decimal `json:"unit_price" binding:"required"`
	TaxRate        *decimal.Decimal `json:"tax_rate" binding:"required"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
}

// CreateInvoiceRequest represents an invoice creation request. Items must be
// present and may be empty.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number" binding:"required,max=100"`
	TableNumber   *string              `json:"table_number" binding:"omitempty,max=50"`
	OrderType     string               `json:"order_type" binding:"omitempty,oneof=dine-in takeaway delivery"`
	EmployeeID    *uuid.UUID           `json:"employee_id"`
	Notes         *string              `json:"notes"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,dive"`
}

// PayInvoiceRequest represents an optional payment body
type PayInvoiceRequest struct {
	Method string `json:"method" binding:"omitempty,max=50"`
}

// UpdateInvoiceStatusRequest represents a status change request
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
