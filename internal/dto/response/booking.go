package response

import (
	"time"

	"hawc-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	UserEmail     string    `json:"userEmail,omitempty"`
	ResourceID    string    `json:"resourceId"`
	ResourceName  string    `json:"resourceName"`
	Type          string    `json:"type"`
	Location      string    `json:"location,omitempty"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Total         string    `json:"total"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentID     string    `json:"paymentId,omitempty"`
	Emailed       bool      `json:"emailed"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	Available bool      `json:"available"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Total     string    `json:"total,omitempty"`
}

type ResourceResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Location     string  `json:"location,omitempty"`
	PricePerHour float64 `json:"pricePerHour"`
	Description  string  `json:"description,omitempty"`
}

type InvoiceRequestResponse struct {
	AccountID       string `json:"accountId"`
	Email           string `json:"email"`
	Name            string `json:"name,omitempty"`
	InvoiceApproval string `json:"invoiceApproval"`
}

// Helper converters

func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		UserEmail:     b.UserEmail,
		ResourceID:    b.ResourceID,
		ResourceName:  b.ResourceName,
		Type:          b.Type,
		Location:      b.Location,
		Start:         b.Start,
		End:           b.End,
		Total:         b.Total,
		PaymentMethod: b.PaymentMethod,
		Emailed:       b.Emailed,
		CreatedAt:     b.CreatedAt,
	}
	if b.PaymentID != nil {
		resp.PaymentID = *b.PaymentID
	}
	return resp
}

func ResourceToResponse(r *entity.Resource) ResourceResponse {
	return ResourceResponse{
		ID:           r.ID,
		Name:         r.Name,
		Type:         string(r.Type),
		Location:     r.Location,
		PricePerHour: r.PricePerHour,
		Description:  r.Description,
	}
}

func AccountToInvoiceRequest(a *entity.Account) InvoiceRequestResponse {
	return InvoiceRequestResponse{
		AccountID:       a.ID,
		Email:           a.Email,
		Name:            a.Name,
		InvoiceApproval: string(a.InvoiceApproval),
	}
}
