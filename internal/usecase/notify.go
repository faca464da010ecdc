package usecase

import (
	"context"
	"fmt"

	"hawc-booking/internal/data/entity"
	"hawc-booking/internal/data/repository"
	"hawc-booking/pkg/mailer"

	"go.uber.org/zap"
)

// notifyBookingOnce sends the confirmation email and flips the emailed flag.
// Best-effort: a failed send is logged and swallowed, never failing the
// booking operation. Callers gate on first creation (or an unset flag), so
// repeated reconciliations produce at most one email.
func notifyBookingOnce(ctx context.Context, repo *repository.Repository, notifier mailer.Notifier, log *zap.Logger, booking *entity.Booking, subject, description, fallbackTo string) {
	if booking.Emailed {
		return
	}

	to := fallbackTo
	if to == "" {
		to = booking.UserEmail
	}
	if to == "" || to == "unknown" {
		log.Warn("No recipient for booking notification", zap.String("booking_id", booking.ID))
		return
	}

	msg := mailer.Message{
		To:      to,
		Subject: subject,
		HTML: fmt.Sprintf(
			"<h2>%s</h2>"+
				"<p>Booking for <strong>%s</strong>.</p>"+
				"<p>Amount: <strong>&euro;%s</strong></p>"+
				"<p>Original user email: <strong>%s</strong></p>"+
				"<p>Booking ID: <strong>%s</strong></p>",
			subject, description, booking.Total, booking.UserEmail, booking.ID),
	}

	if err := notifier.Send(ctx, msg); err != nil {
		log.Warn("Booking notification failed",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return
	}

	if err := repo.Booking.MarkNotified(ctx, booking.ID); err != nil {
		log.Warn("Failed to mark booking notified",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return
	}
	booking.Emailed = true
}
