// Package money holds the fixed-precision arithmetic used for invoice totals.
//
// Every amount is a decimal.Decimal. Rounding is half-up (away from zero) to two
// places; values are never clamped, so a discount larger than the taxed amount
// produces a negative line total.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits kept for currency amounts.
const Places int32 = 2

var hundred = decimal.NewFromInt(100)

// LineTotals are the derived amounts of a single invoice line.
type LineTotals struct {
	ExclTax   decimal.Decimal
	TaxAmount decimal.Decimal
	InclTax   decimal.Decimal
}

// Round2 rounds d half-up to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// ComputeLine derives the excl-tax, tax and incl-tax amounts of a line.
// Each value is rounded independently:
//
//	excl = round(quantity * unitPrice)
//	tax  = round(excl * taxRate / 100)
//	incl = round(excl + tax - discount)
func ComputeLine(quantity, unitPrice, taxRate, discount decimal.Decimal) LineTotals {
	excl := Round2(quantity.Mul(unitPrice))
	tax := Round2(excl.Mul(taxRate).Div(hundred))
	incl := Round2(excl.Add(tax).Sub(discount))

	return LineTotals{
		ExclTax:   excl,
		TaxAmount: tax,
		InclTax:   incl,
	}
}

// Sum adds the given amounts. The empty sum is zero.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Parse reads a decimal from its string form. Malformed input is an error,
// never a silent zero.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("money: empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	return d, nil
}

// CheckColumn reports whether d fits a numeric(precision, 2) column without
// rounding or overflow.
func CheckColumn(d decimal.Decimal, precision int32) error {
	if !d.Equal(Round2(d)) {
		return fmt.Errorf("must have at most %d decimal places", Places)
	}
	if d.Abs().GreaterThanOrEqual(decimal.New(1, precision-Places)) {
		return fmt.Errorf("must have at most %d digits before the decimal point", precision-Places)
	}
	return nil
}

// Format renders d with exactly two fractional digits, e.g. "117.99".
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}
