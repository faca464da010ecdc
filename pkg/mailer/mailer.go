package mailer

import "context"

// Message is a single transactional email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Notifier sends booking notifications. Implementations are best-effort:
// callers log failures and move on, a lost email never reverts a booking.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
