package request

type CheckAvailabilityRequest struct {
	ResourceID    string `json:"resourceId" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=room vehicle parking-space"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"startTime" validate:"required"`
	DurationHours int    `json:"durationHours" validate:"required,min=1,max=24"`
}

type SetInvoiceApprovalRequest struct {
	State string `json:"state" validate:"required,oneof=pending approved rejected"`
}
