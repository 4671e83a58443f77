package dto

import (
	"time"

	"github.com/campushub/campus-api/internal/models"
)

// NotificationResponse is the view representation of a notification.
type NotificationResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewNotificationResponse converts a notification model to its DTO.
func NewNotificationResponse(model models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        model.ID,
		UserID:    model.UserID,
		Title:     model.Title,
		Message:   model.Message,
		Type:      model.Type,
		Read:      model.Read,
		CreatedAt: model.CreatedAt,
	}
}

// NewNotificationResponseSlice converts a slice of notifications.
func NewNotificationResponseSlice(items []models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewNotificationResponse(item))
	}
	return out
}

// CountUnread counts entries with read=false within the given feed. The badge
// count is always derived from the exact slice returned to the client so the
// list and the badge can never disagree.
func CountUnread(feed []NotificationResponse) int {
	unread := 0
	for _, item := range feed {
		if !item.Read {
			unread++
		}
	}
	return unread
}

// NotificationFeedResponse pairs a notification page with its unread count.
type NotificationFeedResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}
