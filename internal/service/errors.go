package service

import (
	"errors"

	"github.com/campushub/campus-api/internal/repository"
)

var (
	// ErrValidationFailed indicates a required field was missing or malformed.
	// Detected before any write; no partial effect.
	ErrValidationFailed = errors.New("validation failed")
	// ErrInvalidTransition indicates an event status change not permitted from
	// the current state.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotFound indicates the mutation target does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAggregationFailed indicates one of the dashboard sub-reads failed.
	// Partial dashboards are never returned.
	ErrAggregationFailed = errors.New("dashboard aggregation failed")
	// ErrPollClosed indicates a vote on a closed poll.
	ErrPollClosed = repository.ErrPollClosed
	// ErrAssistantUnavailable indicates the chatbot backend did not answer.
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
