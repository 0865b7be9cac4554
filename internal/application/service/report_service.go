package service

import (
	"context"
	"sort"
	"time"

	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"github.com/sangkips/hotel-billing-api/pkg/apperror"
	"github.com/sangkips/hotel-billing-api/pkg/money"
	"github.com/shopspring/decimal"
)

const (
	defaultTopItems = 10
	maxTopItems     = 50
)

// ReportService builds sales summaries from invoices and payments
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// SalesReportInput bounds the report
type SalesReportInput struct {
	From     *time.Time
	To       *time.Time
	TopItems int
}

// DailySales is the invoiced and collected amount of one day
type DailySales struct {
	Day          string
	InvoiceCount int64
	Invoiced     decimal.Decimal
	PaymentCount int64
	Collected    decimal.Decimal
}

// SalesReport summarises billing over a date range
type SalesReport struct {
	From             *time.Time
	To               *time.Time
	InvoiceCount     int64
	InvoicedTotal    decimal.Decimal
	CollectedTotal   decimal.Decimal
	OutstandingTotal decimal.Decimal
	ByStatus         []repository.StatusTotal
	Daily            []DailySales
	TopItems         []repository.ItemSales
}

// SalesReport aggregates invoices created and payments received in the range.
// Cancelled invoices are counted per status but excluded from the totals.
func (s *ReportService) SalesReport(ctx context.Context, input *SalesReportInput) (*SalesReport, error) {
	if input.From != nil && input.To != nil && input.From.After(*input.To) {
		return nil, apperror.NewBadRequestError("start_date must not be after end_date")
	}

	limit := input.TopItems
	if limit <= 0 {
		limit = defaultTopItems
	}
	if limit > maxTopItems {
		limit = maxTopItems
	}

	rng := repository.DateRange{From: input.From, To: input.To}

	byStatus, err := s.reportRepo.StatusTotals(ctx, rng)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	invoiced, err := s.reportRepo.DailyInvoiced(ctx, rng)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	collected, err := s.reportRepo.DailyCollected(ctx, rng)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	topItems, err := s.reportRepo.TopItems(ctx, rng, limit)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	report := &SalesReport{
		From:             input.From,
		To:               input.To,
		InvoicedTotal:    decimal.Zero,
		CollectedTotal:   decimal.Zero,
		OutstandingTotal: decimal.Zero,
		ByStatus:         byStatus,
		TopItems:         topItems,
	}

	for _, st := range byStatus {
		report.InvoiceCount += st.InvoiceCount
		if st.Status == enum.InvoiceStatusCancelled {
			continue
		}
		report.InvoicedTotal = report.InvoicedTotal.Add(st.TotalAmount)
		if st.Status.Payable() {
			report.OutstandingTotal = report.OutstandingTotal.Add(st.TotalAmount)
		}
	}

	days := make(map[string]*DailySales)
	day := func(key string) *DailySales {
		d, ok := days[key]
		if !ok {
			d = &DailySales{Day: key, Invoiced: decimal.Zero, Collected: decimal.Zero}
			days[key] = d
		}
		return d
	}
	for _, row := range invoiced {
		d := day(row.Day)
		d.InvoiceCount = row.Count
		d.Invoiced = money.Round2(row.Amount)
	}
	for _, row := range collected {
		d := day(row.Day)
		d.PaymentCount = row.Count
		d.Collected = money.Round2(row.Amount)
		report.CollectedTotal = report.CollectedTotal.Add(row.Amount)
	}

	report.Daily = make([]DailySales, 0, len(days))
	for _, d := range days {
		report.Daily = append(report.Daily, *d)
	}
	sort.Slice(report.Daily, func(i, j int) bool { return report.Daily[i].Day < report.Daily[j].Day })

	report.InvoicedTotal = money.Round2(report.InvoicedTotal)
	report.CollectedTotal = money.Round2(report.CollectedTotal)
	report.OutstandingTotal = money.Round2(report.OutstandingTotal)

	return report, nil
}
