package models

import "time"

// Lost item lifecycle values.
const (
	LostItemStatusLost    = "lost"
	LostItemStatusFound   = "found"
	LostItemStatusClaimed = "claimed"
)

// LostItem is a lost-and-found record reported by a user.
type LostItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:128" json:"category"`
	Location    string    `gorm:"size:255" json:"location"`
	Status      string    `gorm:"size:32;not null;default:lost" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// KnownLostItemStatus reports membership in the lost item enum.
func KnownLostItemStatus(status string) bool {
	switch status {
	case LostItemStatusLost, LostItemStatusFound, LostItemStatusClaimed:
		return true
	}
	return false
}
