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
	"hawc-booking/pkg/utils"

	"go.uber.org/zap"
)

type InvoiceService interface {
	// CreateInvoiceBooking is the payment-free path for pre-approved
	// professional accounts. Idempotent on metadata.requestId.
	CreateInvoiceBooking(ctx context.Context, req *request.CreateInvoiceBookingRequest) error

	// Admin approval management
	ListInvoiceRequests(ctx context.Context) ([]response.InvoiceRequestResponse, error)
	SetInvoiceApproval(ctx context.Context, accountID string, state string) error
}

type invoiceService struct {
	repo         *repository.Repository
	availability AvailabilityService
	notifier     mailer.Notifier
	config       *utils.Config
	log          *zap.Logger
}

func NewInvoiceService(repo *repository.Repository, availability AvailabilityService, notifier mailer.Notifier, config *utils.Config, log *zap.Logger) InvoiceService {
	return &invoiceService{
		repo:         repo,
		availability: availability,
		notifier:     notifier,
		config:       config,
		log:          log.With(zap.String("service", "invoice")),
	}
}

func (s *invoiceService) CreateInvoiceBooking(ctx context.Context, req *request.CreateInvoiceBookingRequest) error {
	// The idempotency token and the owner come first: without them nothing
	// below is safe to attempt.
	if req.Metadata.UserID == "" {
		return fmt.Errorf("validation failed: metadata.userId is required")
	}
	if req.Metadata.RequestID == "" {
		return fmt.Errorf("validation failed: metadata.requestId is required for idempotency")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create invoice booking validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// The UI gates this path already; re-validate defensively.
	account, err := s.repo.Account.FindByID(ctx, req.Metadata.UserID)
	if err != nil {
		return fmt.Errorf("look up account %s: %w", req.Metadata.UserID, err)
	}
	if account == nil {
		return fmt.Errorf("account %s not found", req.Metadata.UserID)
	}
	if !account.InvoiceEligible() {
		s.log.Warn("Invoice booking attempt by ineligible account",
			zap.String("account_id", account.ID),
			zap.String("class", string(account.Class)),
			zap.String("invoice_approval", string(account.InvoiceApproval)),
		)
		return fmt.Errorf("account %s is not approved for invoice booking", account.ID)
	}

	start, end, err := parseInterval(req.Metadata.StartISO, req.Metadata.EndISO)
	if err != nil {
		return err
	}

	bookingID := entity.InvoiceBookingPrefix + req.Metadata.RequestID

	existing, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("look up booking %s: %w", bookingID, err)
	}
	if existing != nil {
		notifyBookingOnce(ctx, s.repo, s.notifier, s.log, existing,
			"HAWC booking created (invoice)", req.Description, s.config.Email.To)
		return nil
	}

	available, err := s.availability.CheckInterval(ctx, req.Metadata.ResourceID, start, end)
	if err != nil {
		return err
	}
	if !available {
		return fmt.Errorf("resource %s is already booked in this range", req.Metadata.ResourceID)
	}

	userEmail := req.Metadata.UserEmail
	if userEmail == "" {
		userEmail = account.Email
	}

	booking := &entity.Booking{
		ID:            bookingID,
		UserID:        req.Metadata.UserID,
		UserEmail:     userEmail,
		ResourceID:    req.Metadata.ResourceID,
		ResourceName:  req.Metadata.ResourceName,
		Type:          req.Metadata.Type,
		Location:      req.Metadata.Location,
		Start:         start,
		End:           end,
		Total:         utils.FormatAmount(req.Amount),
		PaymentMethod: entity.PaymentMethodInvoice,
		Emailed:       false,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Booking.CreateIfAbsent(ctx, booking)
	if err != nil {
		return fmt.Errorf("create invoice booking %s: %w", bookingID, err)
	}

	if created {
		s.log.Info("Invoice booking created",
			zap.String("booking_id", bookingID),
			zap.String("account_id", account.ID),
			zap.String("resource_id", req.Metadata.ResourceID),
			zap.String("total", booking.Total),
		)
		notifyBookingOnce(ctx, s.repo, s.notifier, s.log, booking,
			"HAWC booking created (invoice)", req.Description, s.config.Email.To)
	}

	return nil
}

func (s *invoiceService) ListInvoiceRequests(ctx context.Context) ([]response.InvoiceRequestResponse, error) {
	accounts, err := s.repo.Account.FindPendingInvoiceRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoice requests: %w", err)
	}

	requests := make([]response.InvoiceRequestResponse, len(accounts))
	for i, account := range accounts {
		requests[i] = response.AccountToInvoiceRequest(account)
	}

	return requests, nil
}

func (s *invoiceService) SetInvoiceApproval(ctx context.Context, accountID string, state string) error {
	approval := entity.InvoiceApproval(state)
	switch approval {
	case entity.InvoiceApprovalPending, entity.InvoiceApprovalApproved, entity.InvoiceApprovalRejected:
	default:
		return fmt.Errorf("invalid approval state %q", state)
	}

	account, err := s.repo.Account.FindByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("look up account %s: %w", accountID, err)
	}
	if account == nil {
		return fmt.Errorf("account %s not found", accountID)
	}
	if account.Class != entity.AccountClassProfessional {
		return fmt.Errorf("account %s is not a professional account, cannot set invoice approval", accountID)
	}

	return s.repo.Account.UpdateInvoiceApproval(ctx, accountID, approval)
}
