package dto

import (
	"time"

	"github.com/campushub/campus-api/internal/models"
)

// ClubCreateRequest registers a new club.
type ClubCreateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"omitempty,max=128"`
}

// StatusUpdateRequest carries a bare status change for simple lifecycle records.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,max=32"`
}

// ClubResponse is the view representation of a club.
type ClubResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Members     int       `json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewClubResponse converts a club model.
func NewClubResponse(club models.Club) ClubResponse {
	return ClubResponse{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		Category:    TitleCase(club.Category),
		Status:      club.Status,
		Members:     club.Members,
		CreatedAt:   club.CreatedAt,
	}
}

// NewClubResponseSlice converts a slice of clubs.
func NewClubResponseSlice(clubs []models.Club) []ClubResponse {
	out := make([]ClubResponse, 0, len(clubs))
	for _, club := range clubs {
		out = append(out, NewClubResponse(club))
	}
	return out
}

// LostItemCreateRequest reports a lost or found item.
type LostItemCreateRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"omitempty,max=128"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	Status      string `json:"status" validate:"omitempty,oneof=lost found"`
}

// LostItemResponse is the view representation of a lost-and-found record.
type LostItemResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	ReportedBy  uint      `json:"reportedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewLostItemResponse converts a lost item model.
func NewLostItemResponse(item models.LostItem) LostItemResponse {
	return LostItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Category:    TitleCase(item.Category),
		Location:    item.Location,
		Status:      item.Status,
		ReportedBy:  item.UserID,
		CreatedAt:   item.CreatedAt,
	}
}

// NewLostItemResponseSlice converts a slice of lost items.
func NewLostItemResponseSlice(items []models.LostItem) []LostItemResponse {
	out := make([]LostItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewLostItemResponse(item))
	}
	return out
}

// PlacementCreateRequest registers a placement drive.
type PlacementCreateRequest struct {
	Company     string    `json:"company" validate:"required,max=255"`
	Role        string    `json:"role" validate:"omitempty,max=255"`
	Package     string    `json:"package" validate:"omitempty,max=128"`
	Eligibility string    `json:"eligibility"`
	DriveDate   time.Time `json:"driveDate" validate:"required"`
}

// PlacementResponse is the view representation of a placement drive.
type PlacementResponse struct {
	ID          uint      `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Package     string    `json:"package"`
	Eligibility string    `json:"eligibility"`
	DriveDate   time.Time `json:"driveDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewPlacementResponse converts a placement drive model.
func NewPlacementResponse(drive models.PlacementDrive) PlacementResponse {
	return PlacementResponse{
		ID:          drive.ID,
		Company:     drive.Company,
		Role:        drive.Role,
		Package:     drive.Package,
		Eligibility: drive.Eligibility,
		DriveDate:   drive.DriveDate,
		Status:      drive.Status,
		CreatedAt:   drive.CreatedAt,
	}
}

// NewPlacementResponseSlice converts a slice of placement drives.
func NewPlacementResponseSlice(drives []models.PlacementDrive) []PlacementResponse {
	out := make([]PlacementResponse, 0, len(drives))
	for _, drive := range drives {
		out = append(out, NewPlacementResponse(drive))
	}
	return out
}

// HostelComplaintCreateRequest raises a hostel maintenance complaint.
type HostelComplaintCreateRequest struct {
	Block       string `json:"block" validate:"required,max=64"`
	Room        string `json:"room" validate:"required,max=32"`
	Category    string `json:"category" validate:"omitempty,max=128"`
	Description string `json:"description" validate:"required"`
}

// HostelComplaintResponse is the view representation of a hostel complaint.
type HostelComplaintResponse struct {
	ID          uint      `json:"id"`
	Block       string    `json:"block"`
	Room        string    `json:"room"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewHostelComplaintResponse converts a hostel complaint model.
func NewHostelComplaintResponse(complaint models.HostelComplaint) HostelComplaintResponse {
	return HostelComplaintResponse{
		ID:          complaint.ID,
		Block:       complaint.Block,
		Room:        complaint.Room,
		Category:    TitleCase(complaint.Category),
		Description: complaint.Description,
		Status:      complaint.Status,
		CreatedAt:   complaint.CreatedAt,
	}
}

// NewHostelComplaintResponseSlice converts a slice of hostel complaints.
func NewHostelComplaintResponseSlice(items []models.HostelComplaint) []HostelComplaintResponse {
	out := make([]HostelComplaintResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewHostelComplaintResponse(item))
	}
	return out
}
