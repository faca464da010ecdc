package response

type PaymentResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	CheckoutURL string `json:"checkoutUrl"`
}

// PaymentStatusResponse reports the processor's authoritative status.
// Booked is true once the booking record exists for this payment.
type PaymentStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Booked bool   `json:"booked"`
}
