package request

// BookingMetadata travels with a payment session or invoice request and
// must be enough to reconstruct the booking without a second round trip.
type BookingMetadata struct {
	ResourceID   string `json:"resourceId" validate:"required"`
	ResourceName string `json:"resourceName" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=room vehicle parking-space"`
	Location     string `json:"location"`
	StartISO     string `json:"startIso" validate:"required"`
	EndISO       string `json:"endIso" validate:"required"`
	UserID       string `json:"userId" validate:"required"`
	UserEmail    string `json:"userEmail" validate:"omitempty,email"`
	// RequestID is the idempotency token, required on the invoice path only
	RequestID string `json:"requestId"`
}

type CreatePaymentRequest struct {
	Amount      float64         `json:"amount" validate:"required,gt=0"`
	Description string          `json:"description"`
	Metadata    BookingMetadata `json:"metadata"`
}

type CreateInvoiceBookingRequest struct {
	Amount      float64         `json:"amount" validate:"required,gt=0"`
	Description string          `json:"description"`
	Metadata    BookingMetadata `json:"metadata"`
}
