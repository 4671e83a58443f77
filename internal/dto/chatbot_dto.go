package dto

import "time"

// ChatbotRequest carries one user prompt for the assistant widget.
type ChatbotRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// ChatbotResponse carries the assistant reply.
type ChatbotResponse struct {
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"createdAt"`
}
