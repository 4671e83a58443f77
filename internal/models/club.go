package models

import "time"

// Club status values.
const (
	ClubStatusActive   = "active"
	ClubStatusInactive = "inactive"
)

// Club is a student organisation.
type Club struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:128" json:"category"`
	Status      string    `gorm:"size:32;not null;default:active" json:"status"`
	Members     int       `gorm:"not null;default:0" json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// KnownClubStatus reports membership in the club status enum.
func KnownClubStatus(status string) bool {
	return status == ClubStatusActive || status == ClubStatusInactive
}
