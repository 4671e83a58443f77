package dto

// ComplaintCreateRequest is the payload to raise a complaint.
type ComplaintCreateRequest struct {
	Category    string `json:"category" validate:"omitempty,max=128"`
	Subject     string `json:"subject" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

// ComplaintStatusUpdateRequest is the faculty-side payload to progress a
// complaint. Response text is shown to the student; the internal note is not.
type ComplaintStatusUpdateRequest struct {
	Status       string `json:"status" validate:"required,max=32"`
	Response     string `json:"response"`
	InternalNote string `json:"internalNote"`
}
