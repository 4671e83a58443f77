package dto

import (
	"time"

	"github.com/campushub/campus-api/internal/models"
)

// StudentDashboardResponse is the composite document rendered by the student
// dashboard. Field names are contract-binding for the SPA.
type StudentDashboardResponse struct {
	User             UserProfile            `json:"user"`
	Stats            ComplaintStats         `json:"stats"`
	RecentComplaints []ComplaintSummary     `json:"recentComplaints"`
	Notices          []NoticeResponse       `json:"notices"`
	Notifications    []NotificationResponse `json:"notifications"`
	UnreadCount      int                    `json:"unreadCount"`
}

// UserProfile is the profile slice of a dashboard payload.
type UserProfile struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Program    string `json:"program"`
	Year       int    `json:"year"`
	Department string `json:"department"`
	AvatarURL  string `json:"avatarUrl"`
}

// NewUserProfile converts a user model into its view representation.
func NewUserProfile(user models.User) UserProfile {
	return UserProfile{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       user.Role,
		Program:    user.Program,
		Year:       user.Year,
		Department: user.Department,
		AvatarURL:  user.AvatarURL,
	}
}

// ComplaintStats are the fixed complaint counters. Every field defaults to zero
// when the principal has no complaints; none is ever omitted or null.
type ComplaintStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

// ComplaintSummary is the compact complaint row shown in dashboard lists.
type ComplaintSummary struct {
	ID       uint      `json:"id"`
	Category string    `json:"category"`
	Subject  string    `json:"subject"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
}

// NewComplaintSummary converts a complaint model into its list representation.
func NewComplaintSummary(complaint models.Complaint) ComplaintSummary {
	return ComplaintSummary{
		ID:       complaint.ID,
		Category: complaint.Category,
		Subject:  complaint.Subject,
		Status:   complaint.Status,
		Date:     complaint.CreatedAt,
	}
}

// NewComplaintSummarySlice converts a slice of complaints.
func NewComplaintSummarySlice(complaints []models.Complaint) []ComplaintSummary {
	out := make([]ComplaintSummary, 0, len(complaints))
	for _, complaint := range complaints {
		out = append(out, NewComplaintSummary(complaint))
	}
	return out
}
