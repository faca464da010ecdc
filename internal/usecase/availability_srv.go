package usecase

import (
	"context"
	"fmt"
	"time"

	"hawc-booking/internal/data/repository"
	"hawc-booking/internal/dto/request"
	"hawc-booking/internal/dto/response"
	"hawc-booking/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityService interface {
	// Check validates a candidate slot from the client's calendar inputs
	// and quotes the price when the slot is free.
	Check(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityResponse, error)

	// CheckInterval reports whether the interval is free of overlapping
	// bookings on the resource. Reused at materialization time by the
	// payment and invoice paths.
	CheckInterval(ctx context.Context, resourceID string, start, end time.Time) (bool, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) Check(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check availability validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	start, err := utils.ComposeUTC(req.Date, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid time input: %w", err)
	}
	end := start.Add(time.Duration(req.DurationHours) * time.Hour)

	resource, err := s.repo.Resource.FindByID(ctx, req.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("look up resource: %w", err)
	}
	if resource == nil {
		return nil, fmt.Errorf("resource %s not found", req.ResourceID)
	}

	available, err := s.CheckInterval(ctx, req.ResourceID, start, end)
	if err != nil {
		return nil, err
	}

	resp := &response.AvailabilityResponse{
		Available: available,
		Start:     start,
		End:       end,
	}
	if available {
		resp.Total = utils.FormatAmount(resource.PricePerHour * float64(req.DurationHours))
	}

	s.log.Info("Availability checked",
		zap.String("resource_id", req.ResourceID),
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Bool("available", available),
	)

	return resp, nil
}

func (s *availabilityService) CheckInterval(ctx context.Context, resourceID string, start, end time.Time) (bool, error) {
	if !start.Before(end) {
		return false, fmt.Errorf("invalid interval: start %s is not before end %s", start, end)
	}

	// Superset prefilter: anything starting at or after the candidate end
	// cannot overlap a half-open interval.
	existing, err := s.repo.Booking.FindByResourceBefore(ctx, resourceID, end)
	if err != nil {
		return false, fmt.Errorf("check availability for resource %s: %w", resourceID, err)
	}

	for _, booking := range existing {
		if utils.Overlaps(start, end, booking.Start, booking.End) {
			s.log.Info("Slot conflict",
				zap.String("resource_id", resourceID),
				zap.String("conflicting_booking", booking.ID),
			)
			return false, nil
		}
	}

	return true, nil
}
