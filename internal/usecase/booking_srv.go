package usecase

import (
	"context"
	"fmt"
	"time"

	"hawc-booking/internal/data/repository"
	"hawc-booking/internal/dto/response"
	"hawc-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, userID string, limit int) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, id string) (*response.BookingResponse, error)
	// CancelBooking deletes the booking when the cancellation window still
	// permits it.
	CancelBooking(ctx context.Context, id string) error
	GetResources(ctx context.Context, typeTag string) ([]response.ResourceResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	window time.Duration
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		window: time.Duration(config.Booking.CancellationWindowHours) * time.Hour,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, limit int) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}

	s.log.Info("User bookings retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(bookings)),
	)

	return responses, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", id)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id string) error {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("look up booking %s: %w", id, err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", id)
	}

	if !booking.Cancellable(time.Now().UTC(), s.window) {
		return fmt.Errorf("cannot cancel booking %s less than %.0f hours before start", id, s.window.Hours())
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return fmt.Errorf("cancel booking %s: %w", id, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", id),
		zap.String("user_id", booking.UserID),
	)

	return nil
}

func (s *bookingService) GetResources(ctx context.Context, typeTag string) ([]response.ResourceResponse, error) {
	resources, err := s.repo.Resource.FindAll(ctx, typeTag)
	if err != nil {
		return nil, fmt.Errorf("get resources: %w", err)
	}

	responses := make([]response.ResourceResponse, len(resources))
	for i, resource := range resources {
		responses[i] = response.ResourceToResponse(resource)
	}

	return responses, nil
}
