package models

import "time"

// User roles recognised by the API.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

// User represents an authenticated principal: a student, faculty member or admin.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone      string    `gorm:"size:32" json:"phone"`
	Role       string    `gorm:"size:32;not null;default:student" json:"role"`
	Program    string    `gorm:"size:128" json:"program"`
	Year       int       `json:"year"`
	Department string    `gorm:"size:128" json:"department"`
	AvatarURL  string    `gorm:"size:512" json:"avatar_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
