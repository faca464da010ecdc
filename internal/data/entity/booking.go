package entity

import (
	"time"
)

// Payment methods recorded on a booking
const (
	PaymentMethodInvoice = "invoice"
	PaymentMethodMollie  = "mollie"
)

// InvoiceBookingPrefix derives the deterministic id for invoice bookings
// from the caller-supplied idempotency token: invoice_<requestId>.
const InvoiceBookingPrefix = "invoice_"

// Booking is the canonical reservation record. Its id is derived
// deterministically from the triggering external event (the processor's
// payment id, or invoice_<requestId>), which is what makes repeated
// reconciliation attempts converge to a single record.
type Booking struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	UserEmail     string    `db:"user_email"`
	ResourceID    string    `db:"resource_id"`
	ResourceName  string    `db:"resource_name"`
	Type          string    `db:"type"`
	Location      string    `db:"location"`
	Start         time.Time `db:"start_at"`
	End           time.Time `db:"end_at"`
	Total         string    `db:"total"`
	PaymentMethod string    `db:"payment_method"`
	PaymentID     *string   `db:"payment_id"`
	Emailed       bool      `db:"emailed"`
	CreatedAt     time.Time `db:"created_at"`
}

// Cancellable reports whether the booking may still be cancelled at the
// given moment. The window closes before the start instant.
func (b *Booking) Cancellable(now time.Time, window time.Duration) bool {
	return now.Before(b.Start.Add(-window))
}
