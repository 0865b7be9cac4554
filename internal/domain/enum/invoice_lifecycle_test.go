package enum

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceStatusTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    InvoiceStatus
		trigger InvoiceTrigger
		want    InvoiceStatus
		wantErr bool
	}{
		{"draft to preparing", InvoiceStatusDraft, TriggerPrepare, InvoiceStatusPreparing, false},
		{"preparing to served", InvoiceStatusPreparing, TriggerServe, InvoiceStatusServed, false},
		{"served to finalized", InvoiceStatusServed, TriggerFinalize, InvoiceStatusFinalized, false},
		{"finalized paid", InvoiceStatusFinalized, TriggerPay, InvoiceStatusPaid, false},
		{"served paid", InvoiceStatusServed, TriggerPay, InvoiceStatusPaid, false},
		{"finalized cancelled", InvoiceStatusFinalized, TriggerCancel, InvoiceStatusCancelled, false},
		{"draft cannot be paid", InvoiceStatusDraft, TriggerPay, InvoiceStatusDraft, true},
		{"preparing cannot be paid", InvoiceStatusPreparing, TriggerPay, InvoiceStatusPreparing, true},
		{"paid is terminal", InvoiceStatusPaid, TriggerPay, InvoiceStatusPaid, true},
		{"paid cannot be cancelled", InvoiceStatusPaid, TriggerCancel, InvoiceStatusPaid, true},
		{"cancelled is terminal", InvoiceStatusCancelled, TriggerPrepare, InvoiceStatusCancelled, true},
		{"no skipping ahead", InvoiceStatusDraft, TriggerFinalize, InvoiceStatusDraft, true},
		{"unknown status", InvoiceStatus("archived"), TriggerPay, InvoiceStatus("archived"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Transition(tt.trigger)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTransition))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayable(t *testing.T) {
	assert.True(t, InvoiceStatusFinalized.Payable())
	assert.True(t, InvoiceStatusServed.Payable())
	assert.False(t, InvoiceStatusDraft.Payable())
	assert.False(t, InvoiceStatusPaid.Payable())

	for _, st := range InvoiceStatuses() {
		assert.Equal(t, st.Payable(), st.CanTransition(TriggerPay), st.String())
	}
}

func TestStatusesPermitting(t *testing.T) {
	assert.ElementsMatch(t,
		[]InvoiceStatus{InvoiceStatusServed, InvoiceStatusFinalized},
		StatusesPermitting(TriggerPay))
	assert.ElementsMatch(t,
		[]InvoiceStatus{InvoiceStatusDraft, InvoiceStatusPreparing, InvoiceStatusServed, InvoiceStatusFinalized},
		StatusesPermitting(TriggerCancel))
}

func TestTriggerFor(t *testing.T) {
	trigger, ok := TriggerFor(InvoiceStatusServed)
	assert.True(t, ok)
	assert.Equal(t, TriggerServe, trigger)

	_, ok = TriggerFor(InvoiceStatusDraft)
	assert.False(t, ok)
}

func TestOrderTypeParsing(t *testing.T) {
	ot, err := ParseOrderType("")
	require.NoError(t, err)
	assert.Equal(t, OrderTypeDineIn, ot)

	ot, err = ParseOrderType("takeaway")
	require.NoError(t, err)
	assert.Equal(t, OrderTypeTakeaway, ot)

	_, err = ParseOrderType("drive-through")
	assert.Error(t, err)

	var decoded OrderType
	assert.Error(t, json.Unmarshal([]byte(`"room-service"`), &decoded))
	require.NoError(t, json.Unmarshal([]byte(`"delivery"`), &decoded))
	assert.Equal(t, OrderTypeDelivery, decoded)
}

func TestInvoiceStatusScan(t *testing.T) {
	var s InvoiceStatus
	require.NoError(t, s.Scan([]byte("served")))
	assert.Equal(t, InvoiceStatusServed, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, InvoiceStatusDraft, s)

	assert.Error(t, s.Scan(42))
}
