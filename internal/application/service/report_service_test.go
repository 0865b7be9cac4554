package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"github.com/sangkips/hotel-billing-api/pkg/apperror"
	"github.com/sangkips/hotel-billing-api/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	slab, _, err := env.taxSlabs.EnsureTaxSlab(ctx, &EnsureTaxSlabInput{Rate: dec("10")})
	require.NoError(t, err)
	product, err := env.products.CreateProduct(ctx, &CreateProductInput{Name: "Thali", CurrentUnitPrice: dec("100"), TaxSlabID: slab.ID})
	require.NoError(t, err)

	paid, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{
		InvoiceNumber: "R-1",
		Items:         []InvoiceItemInput{{ProductID: &product.ID, Quantity: dec("2"), UnitPrice: dec("100"), TaxRate: dec("10")}},
	})
	require.NoError(t, err)
	_, err = env.invoices.PayInvoice(ctx, &PayInvoiceInput{InvoiceID: paid.Invoice.ID})
	require.NoError(t, err)

	_, err = env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{
		InvoiceNumber: "R-2",
		Items:         []InvoiceItemInput{{ProductID: &product.ID, Quantity: dec("1"), UnitPrice: dec("100"), TaxRate: dec("10")}},
	})
	require.NoError(t, err)

	cancelled, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{
		InvoiceNumber: "R-3",
		Items:         []InvoiceItemInput{{Quantity: dec("1"), UnitPrice: dec("50"), TaxRate: dec("0")}},
	})
	require.NoError(t, err)
	_, err = env.invoices.CancelInvoice(ctx, cancelled.Invoice.ID, nil)
	require.NoError(t, err)

	report, err := env.reports.SalesReport(ctx, &SalesReportInput{})
	require.NoError(t, err)

	assert.EqualValues(t, 3, report.InvoiceCount)
	assert.Equal(t, "330.00", money.Format(report.InvoicedTotal))
	assert.Equal(t, "220.00", money.Format(report.CollectedTotal))
	assert.Equal(t, "110.00", money.Format(report.OutstandingTotal))

	counts := map[enum.InvoiceStatus]int64{}
	for _, st := range report.ByStatus {
		counts[st.Status] = st.InvoiceCount
	}
	assert.Equal(t, map[enum.InvoiceStatus]int64{
		enum.InvoiceStatusPaid:      1,
		enum.InvoiceStatusFinalized: 1,
		enum.InvoiceStatusCancelled: 1,
	}, counts)

	invoiced, collected := decimal.Zero, decimal.Zero
	for _, d := range report.Daily {
		assert.Len(t, d.Day, len("2006-01-02"))
		invoiced = invoiced.Add(d.Invoiced)
		collected = collected.Add(d.Collected)
	}
	assert.Equal(t, "330.00", money.Format(invoiced))
	assert.Equal(t, "220.00", money.Format(collected))

	require.Len(t, report.TopItems, 1)
	assert.Equal(t, product.ID, report.TopItems[0].ProductID)
	assert.Equal(t, "Thali", report.TopItems[0].Description)
	assert.Equal(t, "3.00", money.Format(report.TopItems[0].Quantity))
	assert.Equal(t, "330.00", money.Format(report.TopItems[0].Revenue))
}

func TestSalesReportLegacyItemRevenue(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	slab, _, err := env.taxSlabs.EnsureTaxSlab(ctx, &EnsureTaxSlabInput{Rate: dec("95")})
	require.NoError(t, err)
	product, err := env.products.CreateProduct(ctx, &CreateProductInput{Name: "Chai", CurrentUnitPrice: dec("0.17"), TaxSlabID: slab.ID})
	require.NoError(t, err)

	invoice := &entity.Invoice{
		InvoiceNumber: "LEGACY-R",
		OrderType:     enum.OrderTypeDineIn,
		Status:        enum.InvoiceStatusFinalized,
		TotalAmount:   dec("0.12"),
	}
	require.NoError(t, env.db.Create(invoice).Error)

	// written before line totals were stored
	legacy := entity.InvoiceItem{
		InvoiceID: invoice.ID, LineNo: 1, ProductID: &product.ID,
		Quantity: dec("0.33"), UnitPrice: dec("0.17"), TaxRate: dec("95"), DiscountAmount: dec("0"),
	}
	require.NoError(t, env.db.Create(&legacy).Error)

	detail, err := env.query.GetInvoice(ctx, invoice.ID)
	require.NoError(t, err)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, "0.12", money.Format(detail.Lines[0].Totals.InclTax))

	report, err := env.reports.SalesReport(ctx, &SalesReportInput{})
	require.NoError(t, err)
	require.Len(t, report.TopItems, 1)
	assert.Equal(t, money.Format(detail.Lines[0].Totals.InclTax), money.Format(report.TopItems[0].Revenue))
}

func TestSalesReportRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{InvoiceNumber: "R-OLD", Items: scenarioItems()})
	require.NoError(t, err)

	future := time.Now().UTC().Add(48 * time.Hour)
	report, err := env.reports.SalesReport(ctx, &SalesReportInput{From: &future})
	require.NoError(t, err)
	assert.Zero(t, report.InvoiceCount)
	assert.Empty(t, report.Daily)
	assert.Equal(t, "0.00", money.Format(report.InvoicedTotal))

	past := future.Add(-96 * time.Hour)
	_, err = env.reports.SalesReport(ctx, &SalesReportInput{From: &future, To: &past})
	assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
}
