package utils

import "strings"

// DefaultPaymentReferencePrefix prefixes payment references, e.g. "PAY-INV-0001".
const DefaultPaymentReferencePrefix = "PAY-"

// PaymentReference derives the payment reference for an invoice number.
// The result is deterministic so a receipt can be matched back to its invoice.
func PaymentReference(prefix, invoiceNumber string) string {
	if prefix == "" {
		prefix = DefaultPaymentReferencePrefix
	}
	return prefix + strings.TrimSpace(invoiceNumber)
}
