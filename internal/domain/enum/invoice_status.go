package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPreparing InvoiceStatus = "preparing"
	InvoiceStatusServed    InvoiceStatus = "served"
	InvoiceStatusFinalized InvoiceStatus = "finalized"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

var invoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusPreparing,
	InvoiceStatusServed,
	InvoiceStatusFinalized,
	InvoiceStatusPaid,
	InvoiceStatusCancelled,
}

// InvoiceStatuses returns every known status in lifecycle order.
func InvoiceStatuses() []InvoiceStatus {
	out := make([]InvoiceStatus, len(invoiceStatuses))
	copy(out, invoiceStatuses)
	return out
}

// ParseInvoiceStatus validates s against the known statuses.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	for _, st := range invoiceStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown invoice status %q", s)
}

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) IsValid() bool {
	_, err := ParseInvoiceStatus(string(s))
	return err == nil
}

// Payable reports whether an invoice in this status may be paid.
func (s InvoiceStatus) Payable() bool {
	return s == InvoiceStatusFinalized || s == InvoiceStatusServed
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseInvoiceStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = InvoiceStatusDraft
	case string:
		*s = InvoiceStatus(v)
	case []byte:
		*s = InvoiceStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into InvoiceStatus", value)
	}
	return nil
}
