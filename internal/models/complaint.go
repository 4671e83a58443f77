package models

import "time"

// Complaint status values. "In Progress" is the canonical spelling; rows written
// by older clients as "In-Progress" are folded into the same bucket when counting.
const (
	ComplaintStatusPending    = "Pending"
	ComplaintStatusInProgress = "In Progress"
	ComplaintStatusResolved   = "Resolved"
	ComplaintStatusRejected   = "Rejected"
)

// Complaint is a grievance raised by a student and handled by a faculty member.
type Complaint struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	FacultyID    *uint     `gorm:"index" json:"faculty_id"`
	Category     string    `gorm:"size:128" json:"category"`
	Subject      string    `gorm:"size:255;not null" json:"subject"`
	Description  string    `gorm:"type:text" json:"description"`
	Status       string    `gorm:"size:32;not null;default:Pending" json:"status"`
	Response     string    `gorm:"type:text" json:"response"`
	InternalNote string    `gorm:"type:text" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User    User  `gorm:"foreignKey:UserID" json:"-"`
	Faculty *User `gorm:"foreignKey:FacultyID" json:"-"`
}

// KnownComplaintStatus reports whether the value is a member of the status enum.
func KnownComplaintStatus(status string) bool {
	switch status {
	case ComplaintStatusPending, ComplaintStatusInProgress, ComplaintStatusResolved, ComplaintStatusRejected:
		return true
	}
	return false
}

// Hostel complaint lifecycle values.
const (
	HostelComplaintStatusPending    = "pending"
	HostelComplaintStatusInProgress = "in_progress"
	HostelComplaintStatusResolved   = "resolved"
)

// HostelComplaint is a maintenance grievance scoped to a hostel room.
type HostelComplaint struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Block       string    `gorm:"size:64" json:"block"`
	Room        string    `gorm:"size:32" json:"room"`
	Category    string    `gorm:"size:128" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:32;not null;default:pending" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// KnownHostelComplaintStatus reports membership in the hostel complaint enum.
func KnownHostelComplaintStatus(status string) bool {
	switch status {
	case HostelComplaintStatusPending, HostelComplaintStatusInProgress, HostelComplaintStatusResolved:
		return true
	}
	return false
}
