package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/observability"
	"github.com/campushub/campus-api/internal/repository"
)

// PollService owns poll lifecycle and the vote tally invariant: the poll total
// always equals the sum of its option counts.
type PollService interface {
	Create(ctx context.Context, payload dto.PollCreateRequest, actor Actor) (dto.PollResponse, error)
	List(ctx context.Context) ([]dto.PollResponse, error)
	Vote(ctx context.Context, pollID uint, payload dto.VoteRequest) (dto.PollResponse, error)
	Close(ctx context.Context, pollID uint) (dto.PollResponse, error)
}

type pollService struct {
	repo      repository.PollRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewPollService constructs the poll service.
func NewPollService(repo repository.PollRepository, validate *validator.Validate, logger zerolog.Logger) PollService {
	return &pollService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "poll_service").Logger(),
		now:       time.Now,
	}
}

func (s *pollService) Create(ctx context.Context, payload dto.PollCreateRequest, actor Actor) (dto.PollResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.PollResponse{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	options := make([]models.PollOption, 0, len(payload.Options))
	for i, label := range payload.Options {
		label = strings.TrimSpace(label)
		if label == "" {
			return dto.PollResponse{}, fmt.Errorf("%w: option labels must not be blank", ErrValidationFailed)
		}
		options = append(options, models.PollOption{Label: label, Position: i})
	}

	poll := models.Poll{
		Question:  strings.TrimSpace(payload.Question),
		Status:    models.PollStatusActive,
		CreatedBy: actor.ID,
		EndsAt:    payload.EndsAt,
		Options:   options,
	}

	if err := s.repo.Create(ctx, &poll); err != nil {
		return dto.PollResponse{}, err
	}

	s.logger.Info().Uint("poll_id", poll.ID).Int("options", len(options)).Msg("poll opened")
	return dto.NewPollResponse(poll), nil
}

func (s *pollService) List(ctx context.Context) ([]dto.PollResponse, error) {
	polls, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewPollResponseSlice(polls), nil
}

// Vote casts one vote. The repository serialises concurrent votes on the same
// poll; a closed poll rejects the vote and leaves tallies untouched.
func (s *pollService) Vote(ctx context.Context, pollID uint, payload dto.VoteRequest) (dto.PollResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.PollResponse{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	poll, err := s.repo.Vote(ctx, pollID, payload.OptionID, s.now())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPollClosed):
			return dto.PollResponse{}, ErrPollClosed
		case errors.Is(err, repository.ErrOptionNotInPoll), errors.Is(err, gorm.ErrRecordNotFound):
			return dto.PollResponse{}, ErrNotFound
		}
		return dto.PollResponse{}, err
	}

	observability.PollVotesTotal().Inc()
	return dto.NewPollResponse(poll), nil
}

func (s *pollService) Close(ctx context.Context, pollID uint) (dto.PollResponse, error) {
	poll, err := s.repo.Close(ctx, pollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PollResponse{}, ErrNotFound
		}
		return dto.PollResponse{}, err
	}

	s.logger.Info().Uint("poll_id", pollID).Msg("poll closed")
	return dto.NewPollResponse(poll), nil
}
