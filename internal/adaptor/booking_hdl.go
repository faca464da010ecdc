package adaptor

import (
	"encoding/json"
	"net/http"

	"hawc-booking/internal/dto/request"
	"hawc-booking/internal/usecase"
	"hawc-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	booking      usecase.BookingService
	invoice      usecase.InvoiceService
	availability usecase.AvailabilityService
	log          *zap.Logger
}

func NewBookingHandler(booking usecase.BookingService, invoice usecase.InvoiceService, availability usecase.AvailabilityService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		booking:      booking,
		invoice:      invoice,
		availability: availability,
		log:          log.With(zap.String("handler", "booking")),
	}
}

// CreateInvoiceBooking handles POST /create-invoice-booking
func (h *BookingHandler) CreateInvoiceBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInvoiceBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.invoice.CreateInvoiceBooking(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "create invoice booking")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]bool{"ok": true})
}

// DeleteBooking handles DELETE /delete-booking?id=
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		utils.ResponseBadRequest(w, "id is required", nil)
		return
	}

	if err := h.booking.CancelBooking(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]bool{"ok": true})
}

// GetUserBookings handles GET /bookings?userId=
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.ResponseBadRequest(w, "userId is required", nil)
		return
	}

	limit := utils.ParseInt(r.URL.Query().Get("limit"), 50)

	bookings, err := h.booking.GetUserBookings(r.Context(), userID, limit)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CheckAvailability handles POST /check-availability
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req request.CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.availability.Check(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetResources handles GET /resources?type=
func (h *BookingHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.booking.GetResources(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		handleServiceError(w, h.log, err, "get resources")
		return
	}

	utils.ResponseSuccess(w, "success", resources)
}
