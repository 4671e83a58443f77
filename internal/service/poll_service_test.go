package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/repository"
)

type stubPollRepo struct {
	repository.PollRepository
	poll    models.Poll
	voteErr error
	created *models.Poll
}

func (s *stubPollRepo) Create(ctx context.Context, poll *models.Poll) error {
	s.created = poll
	return nil
}

func (s *stubPollRepo) Vote(ctx context.Context, pollID, optionID uint, now time.Time) (models.Poll, error) {
	if s.voteErr != nil {
		return models.Poll{}, s.voteErr
	}
	return s.poll, nil
}

func TestPollVoteClosedPollMapsToConflict(t *testing.T) {
	repo := &stubPollRepo{voteErr: repository.ErrPollClosed}
	svc := NewPollService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	_, err := svc.Vote(context.Background(), 1, dto.VoteRequest{OptionID: 2})
	require.ErrorIs(t, err, ErrPollClosed)
}

func TestPollVoteForeignOptionMapsToNotFound(t *testing.T) {
	repo := &stubPollRepo{voteErr: repository.ErrOptionNotInPoll}
	svc := NewPollService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	_, err := svc.Vote(context.Background(), 1, dto.VoteRequest{OptionID: 99})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPollVoteWinnerIsStrictMaximum(t *testing.T) {
	repo := &stubPollRepo{poll: models.Poll{
		ID:         1,
		Question:   "q",
		Status:     models.PollStatusActive,
		TotalVotes: 5,
		Options: []models.PollOption{
			{ID: 10, Label: "A", Votes: 2, Position: 0},
			{ID: 11, Label: "B", Votes: 3, Position: 1},
		},
	}}
	svc := NewPollService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	response, err := svc.Vote(context.Background(), 1, dto.VoteRequest{OptionID: 11})
	require.NoError(t, err)
	require.NotNil(t, response.Winner)
	require.Equal(t, uint(11), response.Winner.ID)
}

func TestPollWinnerOmittedBeforeFirstVote(t *testing.T) {
	response := dto.NewPollResponse(models.Poll{
		Options: []models.PollOption{{ID: 1, Label: "A"}, {ID: 2, Label: "B"}},
	})
	require.Nil(t, response.Winner, "a zero-vote poll has no winner to show")
}

func TestPollCreateRejectsBlankOptionLabel(t *testing.T) {
	repo := &stubPollRepo{}
	svc := NewPollService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	_, err := svc.Create(context.Background(), dto.PollCreateRequest{
		Question: "Pick one",
		Options:  []string{"A", "   "},
	}, Actor{ID: 60})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Nil(t, repo.created)
}

func TestPollCreateAssignsPositions(t *testing.T) {
	repo := &stubPollRepo{}
	svc := NewPollService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	_, err := svc.Create(context.Background(), dto.PollCreateRequest{
		Question: "Pick one",
		Options:  []string{" Tea ", "Coffee"},
	}, Actor{ID: 61})
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	require.Equal(t, models.PollStatusActive, repo.created.Status)
	require.Equal(t, "Tea", repo.created.Options[0].Label)
	require.Equal(t, 0, repo.created.Options[0].Position)
	require.Equal(t, 1, repo.created.Options[1].Position)
}
