package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/domain/entity"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"github.com/sangkips/hotel-billing-api/pkg/apperror"
	"github.com/sangkips/hotel-billing-api/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioItems() []InvoiceItemInput {
	return []InvoiceItemInput{
		{Quantity: dec("2"), UnitPrice: dec("100.00"), TaxRate: dec("10"), DiscountAmount: decPtr("0")},
		{Quantity: dec("1"), UnitPrice: dec("50.00"), TaxRate: dec("0"), DiscountAmount: decPtr("5.00")},
	}
}

func countRows(t *testing.T, env *testEnv, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, env.db.Model(model).Count(&n).Error)
	return n
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	actor := uuid.New()

	detail, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{
		InvoiceNumber: "INV-0001",
		CreatedBy:     &actor,
		TableNumber:   strPtr("T4"),
		Items:         scenarioItems(),
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", detail.Invoice.InvoiceNumber)
	assert.Equal(t, enum.InvoiceStatusFinalized, detail.Invoice.Status)
	assert.Equal(t, enum.OrderTypeDineIn, detail.Invoice.OrderType)
	assert.Equal(t, "265.00", money.Format(detail.Invoice.TotalAmount))
	require.Len(t, detail.Lines, 2)

	first, second := detail.Lines[0], detail.Lines[1]
	assert.Equal(t, "200.00", money.Format(first.Totals.ExclTax))
	assert.Equal(t, "20.00", money.Format(first.Totals.TaxAmount))
	assert.Equal(t, "220.00", money.Format(first.Totals.InclTax))
	assert.Equal(t, "50.00", money.Format(second.Totals.ExclTax))
	assert.Equal(t, "0.00", money.Format(second.Totals.TaxAmount))
	assert.Equal(t, "45.00", money.Format(second.Totals.InclTax))

	sum := money.Sum(first.Totals.InclTax, second.Totals.InclTax)
	assert.True(t, sum.Equal(detail.Invoice.TotalAmount))

	for _, line := range detail.Lines {
		assert.Equal(t, detail.Invoice.ID, line.InvoiceID)
		assert.True(t, line.LineTotalInclTax.Valid, "derived totals are stored at creation")
		want := money.Round2(line.Totals.ExclTax.Mul(line.TaxRate).Div(dec("100")))
		assert.True(t, want.Equal(line.Totals.TaxAmount))
	}

	history, err := env.audit.History(ctx, "invoice", detail.Invoice.ID.String())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, AuditInvoiceCreated, history[0].Action)
	assert.Equal(t, actor, *history[0].ActorID)
}

func TestCreateInvoiceRoundingScenario(t *testing.T) {
	env := newTestEnv(t)

	detail, err := env.invoices.CreateInvoice(context.Background(), &CreateInvoiceInput{
		InvoiceNumber: "INV-RND",
		OrderType:     "takeaway",
		Items: []InvoiceItemInput{
			{Quantity: dec("3"), UnitPrice: dec("33.33"), TaxRate: dec("18")},
		},
	})
	require.NoError(t, err)

	require.Len(t, detail.Lines, 1)
	line := detail.Lines[0]
	assert.Equal(t, "99.99", money.Format(line.Totals.ExclTax))
	assert.Equal(t, "18.00", money.Format(line.Totals.TaxAmount))
	assert.Equal(t, "117.99", money.Format(line.Totals.InclTax))
	assert.Equal(t, "0.00", money.Format(line.DiscountAmount))
	assert.Equal(t, "117.99", money.Format(detail.Invoice.TotalAmount))
	assert.Equal(t, enum.OrderTypeTakeaway, detail.Invoice.OrderType)
}

func TestCreateInvoiceWithoutItems(t *testing.T) {
	env := newTestEnv(t)

	detail, err := env.invoices.CreateInvoice(context.Background(), &CreateInvoiceInput{
		InvoiceNumber: "INV-EMPTY",
		Items:         []InvoiceItemInput{},
	})
	require.NoError(t, err)

	assert.Equal(t, "0.00", money.Format(detail.Invoice.TotalAmount))
	assert.Empty(t, detail.Lines)
}

func TestCreateInvoiceDuplicateNumberLeavesNoRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{InvoiceNumber: "INV-DUP", Items: scenarioItems()})
	require.NoError(t, err)

	invoicesBefore := countRows(t, env, &entity.Invoice{})
	itemsBefore := countRows(t, env, &entity.InvoiceItem{})
	auditBefore := countRows(t, env, &entity.AuditLog{})

	_, err = env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{InvoiceNumber: "INV-DUP", Items: scenarioItems()})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusConflict, appErr.Code)
	assert.NotEmpty(t, appErr.Detail)

	assert.Equal(t, invoicesBefore, countRows(t, env, &entity.Invoice{}))
	assert.Equal(t, itemsBefore, countRows(t, env, &entity.InvoiceItem{}))
	assert.Equal(t, auditBefore, countRows(t, env, &entity.AuditLog{}))
}

func TestCreateInvoiceValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name  string
		input *CreateInvoiceInput
		field string
	}{
		{"blank number", &CreateInvoiceInput{InvoiceNumber: "  ", Items: []InvoiceItemInput{}}, "invoice_number"},
		{"unknown order type", &CreateInvoiceInput{InvoiceNumber: "INV-1", OrderType: "drive-in", Items: []InvoiceItemInput{}}, "order_type"},
		{"missing items", &CreateInvoiceInput{InvoiceNumber: "INV-1"}, "items"},
		{"quantity with three decimals", &CreateInvoiceInput{InvoiceNumber: "INV-1", Items: []InvoiceItemInput{
			{Quantity: dec("0.125"), UnitPrice: dec("8"), TaxRate: dec("0")},
		}}, "items[0].quantity"},
		{"tax rate too large", &CreateInvoiceInput{InvoiceNumber: "INV-1", Items: []InvoiceItemInput{
			{Quantity: dec("1"), UnitPrice: dec("8"), TaxRate: dec("0")},
			{Quantity: dec("1"), UnitPrice: dec("8"), TaxRate: dec("1000")},
		}}, "items[1].tax_rate"},
		{"discount with three decimals", &CreateInvoiceInput{InvoiceNumber: "INV-1", Items: []InvoiceItemInput{
			{Quantity: dec("1"), UnitPrice: dec("8"), TaxRate: dec("0"), DiscountAmount: decPtr("0.004")},
		}}, "items[0].discount_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.invoices.CreateInvoice(context.Background(), tt.input)
			require.Error(t, err)

			appErr := apperror.GetAppError(err)
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
			require.NotEmpty(t, appErr.Errors)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
		})
	}

	assert.Zero(t, countRows(t, env, &entity.Invoice{}))
}

func TestCreateInvoiceUsesProductNameAsDescription(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	slab, _, err := env.taxSlabs.EnsureTaxSlab(ctx, &EnsureTaxSlabInput{Rate: dec("5"), Name: "GST 5"})
	require.NoError(t, err)
	product, err := env.products.CreateProduct(ctx, &CreateProductInput{
		Name:             "Masala Dosa",
		CurrentUnitPrice: dec("120.00"),
		TaxSlabID:        slab.ID,
	})
	require.NoError(t, err)

	unknown := uuid.New()
	detail, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{
		InvoiceNumber: "INV-DESC",
		Items: []InvoiceItemInput{
			{ProductID: &product.ID, Quantity: dec("1"), UnitPrice: dec("120.00"), TaxRate: dec("5")},
			{ProductID: &product.ID, Description: strPtr("Dosa, extra chutney"), Quantity: dec("1"), UnitPrice: dec("130.00"), TaxRate: dec("5")},
			{ProductID: &unknown, Quantity: dec("1"), UnitPrice: dec("10.00"), TaxRate: dec("0")},
		},
	})
	require.NoError(t, err)
	require.Len(t, detail.Lines, 3)

	require.NotNil(t, detail.Lines[0].Description)
	assert.Equal(t, "Masala Dosa", *detail.Lines[0].Description)
	assert.Equal(t, "Dosa, extra chutney", *detail.Lines[1].Description)
	assert.Nil(t, detail.Lines[2].Description)
	assert.Equal(t, unknown, *detail.Lines[2].ProductID)
}

func TestGetInvoice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.query.GetInvoice(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	created, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{InvoiceNumber: "INV-GET", Items: scenarioItems()})
	require.NoError(t, err)

	got, err := env.query.GetInvoice(ctx, created.Invoice.ID)
	require.NoError(t, err)
	assert.Len(t, got.Lines, 2)
	assert.Equal(t, "265.00", money.Format(got.Invoice.TotalAmount))
	assert.False(t, got.Invoice.CreatedAt.IsZero())
}

func TestGetInvoiceLegacyAndStoredTotals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	invoice := &entity.Invoice{
		InvoiceNumber: "LEGACY-1",
		OrderType:     enum.OrderTypeDineIn,
		Status:        enum.InvoiceStatusFinalized,
		TotalAmount:   dec("129.99"),
	}
	require.NoError(t, env.db.Create(invoice).Error)

	legacy := entity.InvoiceItem{
		InvoiceID: invoice.ID, LineNo: 1,
		Quantity: dec("3"), UnitPrice: dec("33.33"), TaxRate: dec("18"), DiscountAmount: dec("0"),
	}
	stored := entity.InvoiceItem{
		InvoiceID: invoice.ID, LineNo: 2,
		Quantity: dec("1"), UnitPrice: dec("10.00"), TaxRate: dec("0"), DiscountAmount: dec("0"),
	}
	stored.ApplyTotals()
	stored.LineTotalInclTax.Decimal = dec("12.00") // disagrees with the formula
	require.NoError(t, env.db.Create(&legacy).Error)
	require.NoError(t, env.db.Create(&stored).Error)

	got, err := env.query.GetInvoice(ctx, invoice.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)

	assert.False(t, got.Lines[0].LineTotalInclTax.Valid)
	assert.Equal(t, "99.99", money.Format(got.Lines[0].Totals.ExclTax))
	assert.Equal(t, "18.00", money.Format(got.Lines[0].Totals.TaxAmount))
	assert.Equal(t, "117.99", money.Format(got.Lines[0].Totals.InclTax))

	assert.Equal(t, "12.00", money.Format(got.Lines[1].Totals.InclTax))
	assert.Equal(t, "129.99", money.Format(got.Invoice.TotalAmount))
}

func TestPayInvoice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fixed := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)
	env.invoices.now = func() time.Time { return fixed }

	created, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{InvoiceNumber: "INV-PAY", Items: scenarioItems()})
	require.NoError(t, err)

	cashier := uuid.New()
	receipt, err := env.invoices.PayInvoice(ctx, &PayInvoiceInput{InvoiceID: created.Invoice.ID, ActorID: &cashier})
	require.NoError(t, err)

	assert.Equal(t, created.Invoice.ID, receipt.InvoiceID)
	assert.Equal(t, enum.InvoiceStatusPaid, receipt.Status)
	assert.True(t, receipt.Amount.Equal(created.Invoice.TotalAmount))
	assert.Equal(t, "cash", receipt.Method)
	assert.Equal(t, "PAY-INV-PAY", receipt.Reference)
	assert.True(t, fixed.Equal(receipt.PaidAt))

	got, err := env.query.GetInvoice(ctx, created.Invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, got.Invoice.Status)

	payments, err := env.payments.ListByInvoice(ctx, created.Invoice.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, receipt.PaymentID, payments[0].ID)
	assert.Equal(t, "265.00", money.Format(payments[0].Amount))
	assert.Equal(t, cashier, *payments[0].ReceivedBy)
}

func TestPayInvoiceTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{InvoiceNumber: "INV-TWICE", Items: scenarioItems()})
	require.NoError(t, err)

	_, err = env.invoices.PayInvoice(ctx, &PayInvoiceInput{InvoiceID: created.Invoice.ID, Method: "card"})
	require.NoError(t, err)

	_, err = env.invoices.PayInvoice(ctx, &PayInvoiceInput{InvoiceID: created.Invoice.ID})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.Equal(t, "Invoice is already paid", apperror.GetAppError(err).Message)

	payments, err := env.payments.ListByInvoice(ctx, created.Invoice.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "card", payments[0].Method)
}

func TestPayInvoiceGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.invoices.PayInvoice(ctx, &PayInvoiceInput{InvoiceID: uuid.New()})
	assert.True(t, apperror.IsNotFound(err))

	draft := &entity.Invoice{InvoiceNumber: "DRAFT-1", OrderType: enum.OrderTypeDineIn, Status: enum.InvoiceStatusDraft, TotalAmount: dec("10")}
	require.NoError(t, env.db.Create(draft).Error)

	_, err = env.invoices.PayInvoice(ctx, &PayInvoiceInput{InvoiceID: draft.ID})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.Equal(t, "Invoice cannot be paid in status draft", apperror.GetAppError(err).Message)
	assert.Zero(t, countRows(t, env, &entity.Payment{}))

	served := &entity.Invoice{InvoiceNumber: "SERVED-1", OrderType: enum.OrderTypeDineIn, Status: enum.InvoiceStatusServed, TotalAmount: dec("42.50")}
	require.NoError(t, env.db.Create(served).Error)

	receipt, err := env.invoices.PayInvoice(ctx, &PayInvoiceInput{InvoiceID: served.ID})
	require.NoError(t, err)
	assert.Equal(t, "42.50", money.Format(receipt.Amount))
}

func TestCancelInvoice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{InvoiceNumber: "INV-CXL", Items: scenarioItems()})
	require.NoError(t, err)

	cancelled, err := env.invoices.CancelInvoice(ctx, created.Invoice.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusCancelled, cancelled.Invoice.Status)

	_, err = env.invoices.CancelInvoice(ctx, created.Invoice.ID, nil)
	assert.True(t, apperror.IsConflict(err))

	_, err = env.invoices.PayInvoice(ctx, &PayInvoiceInput{InvoiceID: created.Invoice.ID})
	assert.True(t, apperror.IsConflict(err))

	paid, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{InvoiceNumber: "INV-PAID", Items: scenarioItems()})
	require.NoError(t, err)
	_, err = env.invoices.PayInvoice(ctx, &PayInvoiceInput{InvoiceID: paid.Invoice.ID})
	require.NoError(t, err)

	_, err = env.invoices.CancelInvoice(ctx, paid.Invoice.ID, nil)
	require.Error(t, err)
	assert.Equal(t, "Invoice cannot be cancelled in status paid", apperror.GetAppError(err).Message)
}

func TestUpdateInvoiceStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	draft := &entity.Invoice{InvoiceNumber: "FLOW-1", OrderType: enum.OrderTypeDineIn, Status: enum.InvoiceStatusDraft, TotalAmount: dec("0")}
	require.NoError(t, env.db.Create(draft).Error)

	for _, target := range []enum.InvoiceStatus{enum.InvoiceStatusPreparing, enum.InvoiceStatusServed, enum.InvoiceStatusFinalized} {
		detail, err := env.invoices.UpdateInvoiceStatus(ctx, draft.ID, target, nil)
		require.NoError(t, err, target.String())
		assert.Equal(t, target, detail.Invoice.Status)
	}

	_, err := env.invoices.UpdateInvoiceStatus(ctx, draft.ID, enum.InvoiceStatusPreparing, nil)
	assert.True(t, apperror.IsConflict(err))

	_, err = env.invoices.UpdateInvoiceStatus(ctx, draft.ID, enum.InvoiceStatusPaid, nil)
	assert.True(t, apperror.HasCode(err, http.StatusBadRequest))

	_, err = env.invoices.UpdateInvoiceStatus(ctx, draft.ID, enum.InvoiceStatusDraft, nil)
	assert.True(t, apperror.HasCode(err, http.StatusBadRequest))

	history, err := env.audit.History(ctx, "invoice", draft.ID.String())
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestListInvoices(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, number := range []string{"INV-A", "INV-B", "INV-C"} {
		_, err := env.invoices.CreateInvoice(ctx, &CreateInvoiceInput{InvoiceNumber: number, Items: []InvoiceItemInput{}})
		require.NoError(t, err)
	}

	invoices, page, err := env.query.ListInvoices(ctx, &InvoiceListInput{})
	require.NoError(t, err)
	assert.Len(t, invoices, 3)
	assert.EqualValues(t, 3, page.Total)

	finalized := enum.InvoiceStatusFinalized
	invoices, _, err = env.query.ListInvoices(ctx, &InvoiceListInput{Search: "inv-b", Status: &finalized})
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-B", invoices[0].InvoiceNumber)
}
