package models

import "time"

// Placement drive status values.
const (
	PlacementStatusUpcoming  = "upcoming"
	PlacementStatusOngoing   = "ongoing"
	PlacementStatusCompleted = "completed"
)

// PlacementDrive is a company recruitment drive on campus.
type PlacementDrive struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Company     string    `gorm:"size:255;not null" json:"company"`
	Role        string    `gorm:"size:255" json:"role"`
	Package     string    `gorm:"size:128" json:"package"`
	Eligibility string    `gorm:"type:text" json:"eligibility"`
	DriveDate   time.Time `json:"drive_date"`
	Status      string    `gorm:"size:32;not null;default:upcoming" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// KnownPlacementStatus reports membership in the placement drive enum.
func KnownPlacementStatus(status string) bool {
	switch status {
	case PlacementStatusUpcoming, PlacementStatusOngoing, PlacementStatusCompleted:
		return true
	}
	return false
}
