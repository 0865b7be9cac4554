package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInvoiceItemApplyTotals(t *testing.T) {
	item := InvoiceItem{
		Quantity:       d("2"),
		UnitPrice:      d("100.00"),
		TaxRate:        d("5"),
		DiscountAmount: d("0"),
	}

	totals := item.ApplyTotals()

	assert.Equal(t, "210.00", totals.InclTax.StringFixed(2))
	assert.True(t, item.LineTotalExclTax.Valid)
	assert.Equal(t, "200.00", item.LineTotalExclTax.Decimal.StringFixed(2))
	assert.Equal(t, "10.00", item.LineTaxAmount.Decimal.StringFixed(2))
	assert.Equal(t, "210.00", item.LineTotalInclTax.Decimal.StringFixed(2))
}

func TestInvoiceItemResolvedTotals(t *testing.T) {
	t.Run("legacy row recomputes absent fields", func(t *testing.T) {
		item := InvoiceItem{
			Quantity:       d("1"),
			UnitPrice:      d("99.99"),
			TaxRate:        d("18"),
			DiscountAmount: d("0"),
		}

		got := item.ResolvedTotals()

		assert.Equal(t, "99.99", got.ExclTax.StringFixed(2))
		assert.Equal(t, "18.00", got.TaxAmount.StringFixed(2))
		assert.Equal(t, "117.99", got.InclTax.StringFixed(2))
	})

	t.Run("stored values win over the formula", func(t *testing.T) {
		item := InvoiceItem{
			Quantity:         d("1"),
			UnitPrice:        d("10.00"),
			TaxRate:          d("0"),
			DiscountAmount:   d("0"),
			LineTotalInclTax: decimal.NewNullDecimal(d("12.50")),
		}

		got := item.ResolvedTotals()

		assert.Equal(t, "10.00", got.ExclTax.StringFixed(2))
		assert.Equal(t, "0.00", got.TaxAmount.StringFixed(2))
		assert.Equal(t, "12.50", got.InclTax.StringFixed(2))
	})
}
