package models

import "time"

// Poll status values.
const (
	PollStatusActive = "active"
	PollStatusClosed = "closed"
)

// Poll is a question with a fixed option set. TotalVotes is denormalised and
// must equal the sum of the option vote counts at all times.
type Poll struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Question   string     `gorm:"size:512;not null" json:"question"`
	Status     string     `gorm:"size:32;not null;default:active" json:"status"`
	TotalVotes int        `gorm:"not null;default:0" json:"total_votes"`
	CreatedBy  uint       `gorm:"index" json:"created_by"`
	EndsAt     *time.Time `json:"ends_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Options []PollOption `json:"options"`
}

// PollOption is a single choice within a poll. Position fixes display order and
// breaks winner ties.
type PollOption struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PollID    uint      `gorm:"index;not null" json:"poll_id"`
	Label     string    `gorm:"size:255;not null" json:"label"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
