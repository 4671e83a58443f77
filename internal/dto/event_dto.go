package dto

import (
	"time"

	"github.com/campushub/campus-api/internal/models"
)

// EventCreateRequest is the payload to register an event for approval.
type EventCreateRequest struct {
	Title            string    `json:"title" validate:"required,max=255"`
	Description      string    `json:"description" validate:"omitempty"`
	Date             time.Time `json:"date" validate:"required"`
	Venue            string    `json:"venue" validate:"omitempty,max=255"`
	CoordinatorName  string    `json:"coordinatorName" validate:"omitempty,max=255"`
	CoordinatorEmail string    `json:"coordinatorEmail" validate:"omitempty,email"`
	CoordinatorPhone string    `json:"coordinatorPhone" validate:"omitempty,max=32"`
	Department       string    `json:"department" validate:"omitempty,max=128"`
}

// EventStatusUpdateRequest requests a transition of the event workflow.
type EventStatusUpdateRequest struct {
	Status  string `json:"status" validate:"required"`
	Remarks string `json:"remarks"`
}

// EventResponse is the view representation of an event.
type EventResponse struct {
	ID               uint                   `json:"id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	Date             time.Time              `json:"date"`
	Venue            string                 `json:"venue"`
	CoordinatorName  string                 `json:"coordinatorName"`
	CoordinatorEmail string                 `json:"coordinatorEmail"`
	CoordinatorPhone string                 `json:"coordinatorPhone"`
	Department       string                 `json:"department"`
	Status           string                 `json:"status"`
	Attendees        int                    `json:"attendees"`
	CreatedAt        time.Time              `json:"createdAt"`
	History          []EventHistoryResponse `json:"history,omitempty"`
}

// EventHistoryResponse is one entry of an event's audit trail.
type EventHistoryResponse struct {
	ID        uint      `json:"id"`
	Action    string    `json:"action"`
	ActorID   uint      `json:"actorId"`
	ActorRole string    `json:"actorRole"`
	Remark    string    `json:"remark"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEventResponse converts an event model, including its history when loaded.
func NewEventResponse(event models.Event) EventResponse {
	response := EventResponse{
		ID:               event.ID,
		Title:            event.Title,
		Description:      event.Description,
		Date:             event.Date,
		Venue:            event.Venue,
		CoordinatorName:  event.CoordinatorName,
		CoordinatorEmail: event.CoordinatorEmail,
		CoordinatorPhone: event.CoordinatorPhone,
		Department:       event.Department,
		Status:           event.Status,
		Attendees:        event.Attendees,
		CreatedAt:        event.CreatedAt,
	}
	if len(event.History) > 0 {
		history := make([]EventHistoryResponse, 0, len(event.History))
		for _, entry := range event.History {
			history = append(history, NewEventHistoryResponse(entry))
		}
		response.History = history
	}
	return response
}

// NewEventHistoryResponse converts a history entry.
func NewEventHistoryResponse(entry models.EventHistory) EventHistoryResponse {
	return EventHistoryResponse{
		ID:        entry.ID,
		Action:    entry.Action,
		ActorID:   entry.ActorID,
		ActorRole: entry.ActorRole,
		Remark:    entry.Remark,
		Timestamp: entry.CreatedAt,
	}
}

// NewEventResponseSlice converts a slice of events.
func NewEventResponseSlice(events []models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, NewEventResponse(event))
	}
	return out
}
