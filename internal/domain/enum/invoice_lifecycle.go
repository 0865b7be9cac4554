package enum

import (
	"errors"
	"fmt"

	"github.com/qmuntal/stateless"
)

// InvoiceTrigger moves an invoice between lifecycle states.
type InvoiceTrigger string

const (
	TriggerPrepare  InvoiceTrigger = "prepare"
	TriggerServe    InvoiceTrigger = "serve"
	TriggerFinalize InvoiceTrigger = "finalize"
	TriggerPay      InvoiceTrigger = "pay"
	TriggerCancel   InvoiceTrigger = "cancel"
)

// ErrInvalidTransition is returned when a trigger is not permitted from the current status.
var ErrInvalidTransition = errors.New("invalid invoice status transition")

func newInvoiceMachine(current InvoiceStatus) *stateless.StateMachine {
	machine := stateless.NewStateMachine(current)

	machine.Configure(InvoiceStatusDraft).
		Permit(TriggerPrepare, InvoiceStatusPreparing).
		Permit(TriggerCancel, InvoiceStatusCancelled)

	machine.Configure(InvoiceStatusPreparing).
		Permit(TriggerServe, InvoiceStatusServed).
		Permit(TriggerCancel, InvoiceStatusCancelled)

	machine.Configure(InvoiceStatusServed).
		Permit(TriggerFinalize, InvoiceStatusFinalized).
		Permit(TriggerPay, InvoiceStatusPaid).
		Permit(TriggerCancel, InvoiceStatusCancelled)

	machine.Configure(InvoiceStatusFinalized).
		Permit(TriggerPay, InvoiceStatusPaid).
		Permit(TriggerCancel, InvoiceStatusCancelled)

	machine.Configure(InvoiceStatusPaid)
	machine.Configure(InvoiceStatusCancelled)

	return machine
}

// Transition returns the status reached by firing trigger from s.
func (s InvoiceStatus) Transition(trigger InvoiceTrigger) (InvoiceStatus, error) {
	if !s.IsValid() {
		return s, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, s)
	}

	machine := newInvoiceMachine(s)
	if err := machine.Fire(trigger); err != nil {
		return s, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, trigger, s)
	}

	next, ok := machine.MustState().(InvoiceStatus)
	if !ok {
		return s, fmt.Errorf("%w: unexpected state %v", ErrInvalidTransition, machine.MustState())
	}
	return next, nil
}

// CanTransition reports whether trigger is permitted from s.
func (s InvoiceStatus) CanTransition(trigger InvoiceTrigger) bool {
	_, err := s.Transition(trigger)
	return err == nil
}

// StatusesPermitting lists the statuses from which trigger may fire.
func StatusesPermitting(trigger InvoiceTrigger) []InvoiceStatus {
	var out []InvoiceStatus
	for _, st := range invoiceStatuses {
		if st.CanTransition(trigger) {
			out = append(out, st)
		}
	}
	return out
}

// TriggerFor maps a requested target status to the trigger that reaches it.
func TriggerFor(target InvoiceStatus) (InvoiceTrigger, bool) {
	switch target {
	case InvoiceStatusPreparing:
		return TriggerPrepare, true
	case InvoiceStatusServed:
		return TriggerServe, true
	case InvoiceStatusFinalized:
		return TriggerFinalize, true
	case InvoiceStatusPaid:
		return TriggerPay, true
	case InvoiceStatusCancelled:
		return TriggerCancel, true
	}
	return "", false
}
