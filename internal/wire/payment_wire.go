package wire

import (
	"hawc-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// POST /create-payment - Open a payment session, returns checkout URL
	r.Post("/create-payment", paymentHandler.CreatePayment)

	// GET /payment-status?id= - Resolve authoritative status, materializes
	// the booking on paid
	r.Get("/payment-status", paymentHandler.PaymentStatus)

	// GET /payment-complete - Redirect landing page after hosted checkout
	r.Get("/payment-complete", paymentHandler.PaymentComplete)
}
