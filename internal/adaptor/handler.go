package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"hawc-booking/internal/usecase"
	"hawc-booking/pkg/mollie"
	"hawc-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Payment *PaymentHandler
	Booking *BookingHandler
	Account *AccountHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Payment: NewPaymentHandler(service.Payment, log),
		Booking: NewBookingHandler(service.Booking, service.Invoice, service.Availability, log),
		Account: NewAccountHandler(service.Invoice, log),
	}
}

// handleServiceError maps service errors onto HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	// Processor errors keep their upstream status
	var apiErr *mollie.APIError
	if errors.As(err, &apiErr) {
		log.Warn(operation+" failed - processor error",
			zap.Error(err),
			zap.Int("upstream_status", apiErr.StatusCode),
			zap.String("operation", operation))
		utils.ResponseWithStatus(w, apiErr.StatusCode, "Payment processor error: "+apiErr.Title)
		return
	}

	if errors.Is(err, mollie.ErrNotConfigured) {
		log.Error(operation+" failed - misconfigured",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server misconfigured: payment processor credentials missing")
		return
	}

	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "already booked"):
		log.Warn(operation+" failed - slot conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, "already booked in this range")

	case strings.Contains(errMsg, "not approved"):
		log.Warn(operation+" failed - not approved",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "required"):
		log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "cannot"):
		log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "misconfigured"):
		log.Error(operation+" failed - misconfigured",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server misconfigured: store credentials missing/invalid")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
