package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// DateRange bounds a report. Nil ends are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// StatusTotal is the number and value of invoices in one status
type StatusTotal struct {
	Status       enum.InvoiceStatus
	InvoiceCount int64
	TotalAmount  decimal.Decimal
}

// DailyTotal is an amount aggregated over one calendar day (UTC)
type DailyTotal struct {
	Day    string
	Count  int64
	Amount decimal.Decimal
}

// ItemSales is the quantity and revenue billed for one product
type ItemSales struct {
	ProductID   uuid.UUID
	Description string
	Quantity    decimal.Decimal
	Revenue     decimal.Decimal
}

// ReportRepository defines aggregate queries over invoices and payments
type ReportRepository interface {
	// StatusTotals groups invoices created in the range by status
	StatusTotals(ctx context.Context, rng DateRange) ([]StatusTotal, error)

	// DailyInvoiced sums non-cancelled invoice totals per creation day
	DailyInvoiced(ctx context.Context, rng DateRange) ([]DailyTotal, error)

	// DailyCollected sums payments per payment day
	DailyCollected(ctx context.Context, rng DateRange) ([]DailyTotal, error)

	// TopItems returns the best selling products by revenue
	TopItems(ctx context.Context, rng DateRange, limit int) ([]ItemSales, error)
}
