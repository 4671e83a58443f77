package dto

import (
	"time"

	"github.com/campushub/campus-api/internal/models"
)

// PollCreateRequest is the payload to open a poll.
type PollCreateRequest struct {
	Question string     `json:"question" validate:"required,max=512"`
	Options  []string   `json:"options" validate:"required,min=2,dive,required,max=255"`
	EndsAt   *time.Time `json:"endsAt"`
}

// VoteRequest casts a vote for one option of a poll.
type VoteRequest struct {
	OptionID uint `json:"optionId" validate:"required"`
}

// PollOptionResponse is the view representation of one poll option.
type PollOptionResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
	Votes int    `json:"votes"`
}

// PollResponse is the view representation of a poll. Winner carries the option
// with the strict maximum vote count; on ties the first option by position is
// shown, which affects display only.
type PollResponse struct {
	ID         uint                 `json:"id"`
	Question   string               `json:"question"`
	Status     string               `json:"status"`
	TotalVotes int                  `json:"totalVotes"`
	Options    []PollOptionResponse `json:"options"`
	Winner     *PollOptionResponse  `json:"winner,omitempty"`
	EndsAt     *time.Time           `json:"endsAt"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// NewPollResponse converts a poll model, computing the display winner.
func NewPollResponse(poll models.Poll) PollResponse {
	options := make([]PollOptionResponse, 0, len(poll.Options))
	var winner *PollOptionResponse
	for _, option := range poll.Options {
		converted := PollOptionResponse{ID: option.ID, Label: option.Label, Votes: option.Votes}
		options = append(options, converted)
		if option.Votes > 0 && (winner == nil || converted.Votes > winner.Votes) {
			w := converted
			winner = &w
		}
	}

	return PollResponse{
		ID:         poll.ID,
		Question:   poll.Question,
		Status:     poll.Status,
		TotalVotes: poll.TotalVotes,
		Options:    options,
		Winner:     winner,
		EndsAt:     poll.EndsAt,
		CreatedAt:  poll.CreatedAt,
	}
}

// NewPollResponseSlice converts a slice of polls.
func NewPollResponseSlice(polls []models.Poll) []PollResponse {
	out := make([]PollResponse, 0, len(polls))
	for _, poll := range polls {
		out = append(out, NewPollResponse(poll))
	}
	return out
}
