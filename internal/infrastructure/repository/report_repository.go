package repository

import (
	"context"
	"strings"

	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	domainRepo "github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

// lineRevenueSQL prefers the stored line total and recomputes it for rows
// written before the derived columns existed, rounding each step the way
// money.ComputeLine does.
const lineRevenueSQL = `COALESCE(invoice_items.line_total_incl_tax,
	ROUND(` + lineExclSQL + `
		+ ROUND(` + lineExclSQL + ` * invoice_items.tax_rate / 100, 2)
		- invoice_items.discount_amount, 2))`

const lineExclSQL = `ROUND(invoice_items.quantity * invoice_items.unit_price, 2)`

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func withinRange(query *gorm.DB, column string, rng domainRepo.DateRange) *gorm.DB {
	if rng.From != nil {
		query = query.Where(column+" >= ?", rng.From.UTC())
	}
	if rng.To != nil {
		query = query.Where(column+" <= ?", rng.To.UTC())
	}
	return query
}

func (r *reportRepository) StatusTotals(ctx context.Context, rng domainRepo.DateRange) ([]domainRepo.StatusTotal, error) {
	var results []domainRepo.StatusTotal

	query := conn(ctx, r.db).Model(&entity.Invoice{}).
		Select("status, COUNT(*) AS invoice_count, COALESCE(SUM(total_amount), 0) AS total_amount")
	err := withinRange(query, "created_at", rng).
		Group("status").
		Order("status").
		Scan(&results).Error

	return results, err
}

func (r *reportRepository) DailyInvoiced(ctx context.Context, rng domainRepo.DateRange) ([]domainRepo.DailyTotal, error) {
	var results []domainRepo.DailyTotal

	query := conn(ctx, r.db).Model(&entity.Invoice{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS amount").
		Where("status <> ?", enum.InvoiceStatusCancelled)
	err := withinRange(query, "created_at", rng).
		Group("DATE(created_at)").
		Order("day").
		Scan(&results).Error

	return normalizeDays(results), err
}

func (r *reportRepository) DailyCollected(ctx context.Context, rng domainRepo.DateRange) ([]domainRepo.DailyTotal, error) {
	var results []domainRepo.DailyTotal

	query := conn(ctx, r.db).Model(&entity.Payment{}).
		Select("DATE(paid_at) AS day, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount")
	err := withinRange(query, "paid_at", rng).
		Group("DATE(paid_at)").
		Order("day").
		Scan(&results).Error

	return normalizeDays(results), err
}

func (r *reportRepository) TopItems(ctx context.Context, rng domainRepo.DateRange, limit int) ([]domainRepo.ItemSales, error) {
	var results []domainRepo.ItemSales

	query := conn(ctx, r.db).Table("invoice_items").
		Select(`invoice_items.product_id AS product_id,
			COALESCE(MAX(invoice_items.description), '') AS description,
			SUM(invoice_items.quantity) AS quantity,
			SUM(` + lineRevenueSQL + `) AS revenue`).
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.status <> ?", enum.InvoiceStatusCancelled).
		Where("invoice_items.product_id IS NOT NULL")
	err := withinRange(query, "invoices.created_at", rng).
		Group("invoice_items.product_id").
		Order("revenue DESC").
		Limit(limit).
		Scan(&results).Error

	return results, err
}

// normalizeDays trims driver-specific date renderings to YYYY-MM-DD
func normalizeDays(rows []domainRepo.DailyTotal) []domainRepo.DailyTotal {
	for i := range rows {
		day := strings.TrimSpace(rows[i].Day)
		if len(day) > len("2006-01-02") {
			day = day[:len("2006-01-02")]
		}
		rows[i].Day = day
	}
	return rows
}
