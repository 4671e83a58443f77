package dto

// ProfileUpdateRequest mutates the caller's own profile fields.
type ProfileUpdateRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Phone      string `json:"phone" validate:"omitempty,max=32"`
	Program    string `json:"program" validate:"omitempty,max=128"`
	Year       int    `json:"year" validate:"omitempty,min=1,max=8"`
	Department string `json:"department" validate:"omitempty,max=128"`
}

// AvatarUploadResponse returns the stored avatar location.
type AvatarUploadResponse struct {
	URL string `json:"url"`
}
