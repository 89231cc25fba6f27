package invoices

import "time"

// Transition describes what an update did to the payment state of an invoice.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionPaid
	TransitionUnpaid
)

func (t Transition) String() string {
	switch t {
	case TransitionPaid:
		return "paid"
	case TransitionUnpaid:
		return "unpaid"
	default:
		return "none"
	}
}

// ApplyUpdate writes form onto inv. Amt is always replaced; Paid and PaidDate
// only change when the requested flag differs from the stored one.
func ApplyUpdate(inv *Invoice, form UpdateForm, today time.Time) Transition {
	inv.Amt = form.Amt
	if form.Paid == nil || *form.Paid == inv.Paid {
		return TransitionNone
	}
	if *form.Paid {
		paidOn := dateOf(today)
		inv.Paid = true
		inv.PaidDate = &paidOn
		return TransitionPaid
	}
	inv.Paid = false
	inv.PaidDate = nil
	return TransitionUnpaid
}

// dateOf drops the clock part of t, keeping the calendar day of t's location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
