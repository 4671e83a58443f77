package models

import (
	"time"

	"gorm.io/datatypes"
)

// Event status values.
const (
	EventStatusPendingApproval = "Pending Approval"
	EventStatusApproved        = "Approved"
	EventStatusRejected        = "Rejected"
	EventStatusCompleted       = "Completed"
)

// Event is a campus event that moves through an approval workflow.
type Event struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Description      string    `gorm:"type:text" json:"description"`
	Date             time.Time `json:"date"`
	Venue            string    `gorm:"size:255" json:"venue"`
	CoordinatorName  string    `gorm:"size:255" json:"coordinator_name"`
	CoordinatorEmail string    `gorm:"size:255" json:"coordinator_email"`
	CoordinatorPhone string    `gorm:"size:32" json:"coordinator_phone"`
	Department       string    `gorm:"size:128" json:"department"`
	Status           string    `gorm:"size:32;not null;default:Pending Approval" json:"status"`
	Attendees        int       `gorm:"not null;default:0" json:"attendees"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	History []EventHistory `json:"history,omitempty"`
}

// EventHistory is one immutable entry in an event's audit trail. Rows are only
// ever appended; the log is never rewritten.
type EventHistory struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	EventID   uint              `gorm:"index;not null" json:"event_id"`
	Action    string            `gorm:"size:64;not null" json:"action"`
	ActorID   uint              `gorm:"not null" json:"actor_id"`
	ActorRole string            `gorm:"size:32" json:"actor_role"`
	Remark    string            `gorm:"type:text" json:"remark"`
	Metadata  datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	CreatedAt time.Time         `json:"created_at"`
}
