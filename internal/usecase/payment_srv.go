package usecase

import (
	"context"
	"fmt"
	"time"

	"hawc-booking/internal/data/entity"
	"hawc-booking/internal/data/repository"
	"hawc-booking/internal/dto/request"
	"hawc-booking/internal/dto/response"
	"hawc-booking/pkg/mailer"
	"hawc-booking/pkg/mollie"
	"hawc-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentService interface {
	// CreatePayment opens a payment session with the processor and returns
	// the checkout redirect. Each call creates a distinct session.
	CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)

	// ResolveStatus fetches the authoritative payment status and, on paid,
	// materializes the booking exactly once. Safe to invoke any number of
	// times for the same payment id.
	ResolveStatus(ctx context.Context, paymentID string) (*response.PaymentStatusResponse, error)
}

type paymentService struct {
	repo         *repository.Repository
	processor    PaymentProcessor
	availability AvailabilityService
	notifier     mailer.Notifier
	config       *utils.Config
	log          *zap.Logger
}

func NewPaymentService(repo *repository.Repository, processor PaymentProcessor, availability AvailabilityService, notifier mailer.Notifier, config *utils.Config, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:         repo,
		processor:    processor,
		availability: availability,
		notifier:     notifier,
		config:       config,
		log:          log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	start, end, err := parseInterval(req.Metadata.StartISO, req.Metadata.EndISO)
	if err != nil {
		return nil, err
	}

	// Narrow the race before taking the user to checkout. The slot is
	// re-validated again at materialization time.
	available, err := s.availability.CheckInterval(ctx, req.Metadata.ResourceID, start, end)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, fmt.Errorf("resource %s is already booked in this range", req.Metadata.ResourceID)
	}

	description := req.Description
	if description == "" {
		description = "HAWC booking payment"
	}

	payment, err := s.processor.CreatePayment(ctx, &mollie.CreatePaymentRequest{
		Amount: mollie.Amount{
			Currency: s.config.Mollie.Currency,
			Value:    utils.FormatAmount(req.Amount),
		},
		Description: description,
		RedirectURL: s.config.Mollie.RedirectURL,
		Metadata: mollie.Metadata{
			ResourceID:   req.Metadata.ResourceID,
			ResourceName: req.Metadata.ResourceName,
			Type:         req.Metadata.Type,
			Location:     req.Metadata.Location,
			StartISO:     req.Metadata.StartISO,
			EndISO:       req.Metadata.EndISO,
			UserID:       req.Metadata.UserID,
			UserEmail:    req.Metadata.UserEmail,
		},
	})
	if err != nil {
		s.log.Error("Failed to create payment session",
			zap.Error(err),
			zap.String("resource_id", req.Metadata.ResourceID),
		)
		return nil, fmt.Errorf("create payment session: %w", err)
	}

	s.log.Info("Payment session created",
		zap.String("payment_id", payment.ID),
		zap.String("status", payment.Status),
		zap.String("resource_id", req.Metadata.ResourceID),
		zap.String("amount", payment.Amount.Value),
	)

	return &response.PaymentResponse{
		ID:          payment.ID,
		Status:      payment.Status,
		CheckoutURL: payment.CheckoutURL(),
	}, nil
}

func (s *paymentService) ResolveStatus(ctx context.Context, paymentID string) (*response.PaymentStatusResponse, error) {
	// Always the processor's record, never a client-supplied status.
	payment, err := s.processor.GetPayment(ctx, paymentID)
	if err != nil {
		s.log.Error("Failed to fetch payment status",
			zap.Error(err),
			zap.String("payment_id", paymentID),
		)
		return nil, fmt.Errorf("fetch payment status: %w", err)
	}

	if payment.Status != mollie.StatusPaid {
		// open, canceled, failed, expired: report as-is, no booking action
		return &response.PaymentStatusResponse{ID: payment.ID, Status: payment.Status}, nil
	}

	booked, err := s.materialize(ctx, payment)
	if err != nil {
		return nil, err
	}

	return &response.PaymentStatusResponse{
		ID:     payment.ID,
		Status: payment.Status,
		Booked: booked,
	}, nil
}

// materialize turns a paid payment into the canonical booking record.
// Booking fields come from the processor's recorded metadata and amount, so
// a stale or malicious client cannot alter the confirmed amount or resource.
func (s *paymentService) materialize(ctx context.Context, payment *mollie.Payment) (bool, error) {
	existing, err := s.repo.Booking.FindByID(ctx, payment.ID)
	if err != nil {
		return false, fmt.Errorf("look up booking %s: %w", payment.ID, err)
	}
	if existing != nil {
		// Already materialized by a prior call; retry the notification if
		// the first send never landed.
		notifyBookingOnce(ctx, s.repo, s.notifier, s.log, existing,
			"HAWC booking payment paid", payment.Description, s.config.Email.To)
		return true, nil
	}

	md := payment.Metadata
	start, end, err := parseInterval(md.StartISO, md.EndISO)
	if err != nil {
		return false, fmt.Errorf("invalid booking data on payment %s: %w", payment.ID, err)
	}

	available, err := s.availability.CheckInterval(ctx, md.ResourceID, start, end)
	if err != nil {
		return false, err
	}
	if !available {
		// The initial check passed, a concurrent booking won the slot while
		// this payment was at checkout. Refuse to double-book; the payment
		// needs a manual refund.
		s.log.Error("Paid payment lost its slot, booking not created",
			zap.String("payment_id", payment.ID),
			zap.String("resource_id", md.ResourceID),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return false, nil
	}

	userEmail := md.UserEmail
	if userEmail == "" {
		userEmail = "unknown"
	}

	paymentID := payment.ID
	booking := &entity.Booking{
		ID:            payment.ID,
		UserID:        md.UserID,
		UserEmail:     userEmail,
		ResourceID:    md.ResourceID,
		ResourceName:  md.ResourceName,
		Type:          md.Type,
		Location:      md.Location,
		Start:         start,
		End:           end,
		Total:         payment.Amount.Value,
		PaymentMethod: entity.PaymentMethodMollie,
		PaymentID:     &paymentID,
		Emailed:       false,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Booking.CreateIfAbsent(ctx, booking)
	if err != nil {
		return false, fmt.Errorf("materialize booking %s: %w", payment.ID, err)
	}

	if created {
		notifyBookingOnce(ctx, s.repo, s.notifier, s.log, booking,
			"HAWC booking payment paid", payment.Description, s.config.Email.To)
	}

	return true, nil
}

func parseInterval(startISO, endISO string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start instant %q: %w", startISO, err)
	}
	end, err := time.Parse(time.RFC3339, endISO)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end instant %q: %w", endISO, err)
	}
	start, end = start.UTC(), end.UTC()
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid interval: start %s is not before end %s", startISO, endISO)
	}
	return start, end, nil
}
