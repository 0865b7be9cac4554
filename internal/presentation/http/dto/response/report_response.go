package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/application/service"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
)

// StatusTotalResponse is one row of the per-status breakdown
type StatusTotalResponse struct {
	Status       enum.InvoiceStatus `json:"status"`
	InvoiceCount int64              `json:"invoice_count"`
	TotalAmount  json.Number        `json:"total_amount"`
}

// DailySalesResponse is one day of the report
type DailySalesResponse struct {
	Date         string      `json:"date"`
	InvoiceCount int64       `json:"invoice_count"`
	Invoiced     json.Number `json:"invoiced"`
	PaymentCount int64       `json:"payment_count"`
	Collected    json.Number `json:"collected"`
}

// ItemSalesResponse is a best selling product
type ItemSalesResponse struct {
	ProductID   uuid.UUID   `json:"product_id"`
	Description string      `json:"description"`
	Quantity    json.Number `json:"quantity"`
	Revenue     json.Number `json:"revenue"`
}

// SalesReportResponse is the body of GET /reports/sales
type SalesReportResponse struct {
	From             *string               `json:"start_date"`
	To               *string               `json:"end_date"`
	InvoiceCount     int64                 `json:"invoice_count"`
	InvoicedTotal    json.Number           `json:"invoiced_total"`
	CollectedTotal   json.Number           `json:"collected_total"`
	OutstandingTotal json.Number           `json:"outstanding_total"`
	ByStatus         []StatusTotalResponse `json:"by_status"`
	Daily            []DailySalesResponse  `json:"daily"`
	TopItems         []ItemSalesResponse   `json:"top_items"`
}

func optionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return timestamp(*t)
}

// NewSalesReportResponse maps a sales report
func NewSalesReportResponse(r *service.SalesReport) *SalesReportResponse {
	out := &SalesReportResponse{
		From:             optionalTimestamp(r.From),
		To:               optionalTimestamp(r.To),
		InvoiceCount:     r.InvoiceCount,
		InvoicedTotal:    Amount(r.InvoicedTotal),
		CollectedTotal:   Amount(r.CollectedTotal),
		OutstandingTotal: Amount(r.OutstandingTotal),
		ByStatus:         make([]StatusTotalResponse, len(r.ByStatus)),
		Daily:            make([]DailySalesResponse, len(r.Daily)),
		TopItems:         make([]ItemSalesResponse, len(r.TopItems)),
	}

	for i, st := range r.ByStatus {
		out.ByStatus[i] = StatusTotalResponse{
			Status:       st.Status,
			InvoiceCount: st.InvoiceCount,
			TotalAmount:  Amount(st.TotalAmount),
		}
	}
	for i, d := range r.Daily {
		out.Daily[i] = DailySalesResponse{
			Date:         d.Day,
			InvoiceCount: d.InvoiceCount,
			Invoiced:     Amount(d.Invoiced),
			PaymentCount: d.PaymentCount,
			Collected:    Amount(d.Collected),
		}
	}
	for i, it := range r.TopItems {
		out.TopItems[i] = ItemSalesResponse{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    Amount(it.Quantity),
			Revenue:     Amount(it.Revenue),
		}
	}

	return out
}
