package models

import "time"

// Notice audience values.
const (
	NoticeAudienceStudent = "student"
	NoticeAudienceFaculty = "faculty"
	NoticeAudienceAll     = "all"
)

// NoticeDefaultCategory is applied when a notice is created with a blank category.
const NoticeDefaultCategory = "General"

// Notice is an announcement targeted at a role segment of the campus.
type Notice struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"size:128;not null;default:General" json:"category"`
	Audience    string    `gorm:"size:32;not null;default:all" json:"audience"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedBy   uint      `gorm:"index" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
