package dto

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/campushub/campus-api/internal/models"
)

// NoticeCreateRequest is the payload to publish a notice.
type NoticeCreateRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"omitempty,max=128"`
	Audience    string `json:"audience" validate:"omitempty,oneof=student faculty all"`
}

// NoticeUpdateRequest replaces the mutable fields of an existing notice.
type NoticeUpdateRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"omitempty,max=128"`
	Audience    string `json:"audience" validate:"omitempty,oneof=student faculty all"`
	IsActive    *bool  `json:"isActive"`
}

// NoticeResponse is the view representation of a notice. Category and audience
// are title-cased for display.
type NoticeResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Audience    string    `json:"audience"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewNoticeResponse converts a notice model into its display shape.
func NewNoticeResponse(notice models.Notice) NoticeResponse {
	return NoticeResponse{
		ID:          notice.ID,
		Title:       notice.Title,
		Description: notice.Description,
		Category:    TitleCase(notice.Category),
		Audience:    TitleCase(notice.Audience),
		IsActive:    notice.IsActive,
		CreatedAt:   notice.CreatedAt,
	}
}

// NewNoticeResponseSlice converts a slice of notices.
func NewNoticeResponseSlice(notices []models.Notice) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(notices))
	for _, notice := range notices {
		out = append(out, NewNoticeResponse(notice))
	}
	return out
}

// TitleCase capitalises the first rune of each space-separated word, leaving
// the rest of the word untouched.
func TitleCase(value string) string {
	words := strings.Fields(strings.TrimSpace(value))
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		if first == utf8.RuneError && size <= 1 {
			continue
		}
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}
