package usecase

import (
	"context"

	"hawc-booking/internal/data/repository"
	"hawc-booking/pkg/mailer"
	"hawc-booking/pkg/mollie"
	"hawc-booking/pkg/utils"

	"go.uber.org/zap"
)

// PaymentProcessor is the capability this core needs from the external
// payment gateway. Satisfied by *mollie.Client.
type PaymentProcessor interface {
	CreatePayment(ctx context.Context, req *mollie.CreatePaymentRequest) (*mollie.Payment, error)
	GetPayment(ctx context.Context, id string) (*mollie.Payment, error)
}

type Service struct {
	Availability AvailabilityService
	Payment      PaymentService
	Invoice      InvoiceService
	Booking      BookingService
}

func NewService(repo *repository.Repository, processor PaymentProcessor, notifier mailer.Notifier, config *utils.Config, log *zap.Logger) *Service {
	availability := NewAvailabilityService(repo, log)
	return &Service{
		Availability: availability,
		Payment:      NewPaymentService(repo, processor, availability, notifier, config, log),
		Invoice:      NewInvoiceService(repo, availability, notifier, config, log),
		Booking:      NewBookingService(repo, config, log),
	}
}
