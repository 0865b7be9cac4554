package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"github.com/sangkips/hotel-billing-api/pkg/money"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice is a bill issued for one order
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string             `gorm:"size:100;uniqueIndex;not null" json:"invoice_number"`
	CreatedBy     *uuid.UUID         `gorm:"type:uuid;index" json:"created_by,omitempty"`
	TableNumber   *string            `gorm:"size:50" json:"table_number,omitempty"`
	OrderType     enum.OrderType     `gorm:"size:20;not null;default:'dine-in'" json:"order_type"`
	EmployeeID    *uuid.UUID         `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	Status        enum.InvoiceStatus `gorm:"size:20;not null;default:'draft';index" json:"status"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(14,2);not null;default:0" json:"total_amount"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments []Payment     `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one line of an invoice. The line_* columns are derived at
// creation time; rows written before they existed may hold NULL.
type InvoiceItem struct {
	ID               uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"invoice_id"`
	LineNo           int                 `gorm:"not null;default:0" json:"-"`
	ProductID        *uuid.UUID          `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Description      *string             `gorm:"size:512" json:"description,omitempty"`
	Quantity         decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"quantity"`
	UnitPrice        decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TaxRate          decimal.Decimal     `gorm:"type:decimal(5,2);not null" json:"tax_rate"`
	DiscountAmount   decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0" json:"discount_amount"`
	LineTotalExclTax decimal.NullDecimal `gorm:"type:decimal(14,2)" json:"line_total_excl_tax"`
	LineTaxAmount    decimal.NullDecimal `gorm:"type:decimal(14,2)" json:"line_tax_amount"`
	LineTotalInclTax decimal.NullDecimal `gorm:"type:decimal(14,2)" json:"line_total_incl_tax"`
	CreatedAt        time.Time           `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// ApplyTotals computes and stores the derived line amounts.
func (it *InvoiceItem) ApplyTotals() money.LineTotals {
	totals := money.ComputeLine(it.Quantity, it.UnitPrice, it.TaxRate, it.DiscountAmount)
	it.LineTotalExclTax = decimal.NewNullDecimal(totals.ExclTax)
	it.LineTaxAmount = decimal.NewNullDecimal(totals.TaxAmount)
	it.LineTotalInclTax = decimal.NewNullDecimal(totals.InclTax)
	return totals
}

// ResolvedTotals returns the stored derived amounts, recomputing only the
// ones that are absent. Stored values win even when they disagree with the
// formula.
func (it *InvoiceItem) ResolvedTotals() money.LineTotals {
	computed := money.ComputeLine(it.Quantity, it.UnitPrice, it.TaxRate, it.DiscountAmount)

	out := computed
	if it.LineTotalExclTax.Valid {
		out.ExclTax = it.LineTotalExclTax.Decimal
	}
	if it.LineTaxAmount.Valid {
		out.TaxAmount = it.LineTaxAmount.Decimal
	}
	if it.LineTotalInclTax.Valid {
		out.InclTax = it.LineTotalInclTax.Decimal
	}
	return out
}
