package wire

import (
	"hawc-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /create-invoice-booking - Payment-free path for approved
	// professional accounts
	r.Post("/create-invoice-booking", bookingHandler.CreateInvoiceBooking)

	// DELETE /delete-booking?id= - Cancel within the cancellation window
	r.Delete("/delete-booking", bookingHandler.DeleteBooking)

	// GET /bookings?userId= - Read back confirmed bookings
	r.Get("/bookings", bookingHandler.GetUserBookings)

	// POST /check-availability - Candidate slot vs existing bookings
	r.Post("/check-availability", bookingHandler.CheckAvailability)

	// GET /resources?type= - Catalog listing
	r.Get("/resources", bookingHandler.GetResources)
}
