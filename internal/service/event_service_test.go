package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/repository"
)

type stubEventRepo struct {
	repository.EventRepository
	event      models.Event
	findErr    error
	lastStatus string
	lastEntry  models.EventHistory
	created    *models.Event
}

func (s *stubEventRepo) FindByID(ctx context.Context, id uint) (models.Event, error) {
	if s.findErr != nil {
		return models.Event{}, s.findErr
	}
	return s.event, nil
}

func (s *stubEventRepo) Create(ctx context.Context, event *models.Event) error {
	s.created = event
	return nil
}

func (s *stubEventRepo) UpdateStatusWithHistory(ctx context.Context, id uint, status string, entry models.EventHistory) (models.Event, error) {
	s.lastStatus = status
	s.lastEntry = entry
	s.event.Status = status
	return s.event, nil
}

func TestEventApprovalRecordsAuditEntry(t *testing.T) {
	repo := &stubEventRepo{event: models.Event{ID: 1, Title: "Hackathon", Status: models.EventStatusPendingApproval}}
	svc := NewEventService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	actor := Actor{ID: 50, Role: models.RoleAdmin}
	response, err := svc.UpdateStatus(context.Background(), 1, dto.EventStatusUpdateRequest{Status: models.EventStatusApproved}, actor)
	require.NoError(t, err)

	require.Equal(t, models.EventStatusApproved, response.Status)
	require.Equal(t, "approved", repo.lastEntry.Action)
	require.Equal(t, uint(50), repo.lastEntry.ActorID)
	require.Equal(t, models.EventStatusPendingApproval, repo.lastEntry.Metadata["from"])
	require.Equal(t, models.EventStatusApproved, repo.lastEntry.Metadata["to"])
}

func TestEventChangeDecisionRequiresRemark(t *testing.T) {
	repo := &stubEventRepo{event: models.Event{ID: 2, Status: models.EventStatusApproved}}
	svc := NewEventService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())
	actor := Actor{ID: 51, Role: models.RoleAdmin}

	_, err := svc.UpdateStatus(context.Background(), 2, dto.EventStatusUpdateRequest{Status: models.EventStatusRejected}, actor)
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Empty(t, repo.lastStatus, "a rejected request must not touch the row")

	response, err := svc.UpdateStatus(context.Background(), 2, dto.EventStatusUpdateRequest{
		Status:  models.EventStatusRejected,
		Remarks: "venue double booked",
	}, actor)
	require.NoError(t, err)
	require.Equal(t, models.EventStatusRejected, response.Status)
	require.Equal(t, "change_decision", repo.lastEntry.Action)
	require.Equal(t, "venue double booked", repo.lastEntry.Remark)
}

func TestEventCompletedIsTerminal(t *testing.T) {
	repo := &stubEventRepo{event: models.Event{ID: 3, Status: models.EventStatusCompleted}}
	svc := NewEventService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	_, err := svc.UpdateStatus(context.Background(), 3, dto.EventStatusUpdateRequest{Status: models.EventStatusApproved}, Actor{ID: 52})
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestEventUpdateStatusUnknownEvent(t *testing.T) {
	repo := &stubEventRepo{findErr: gorm.ErrRecordNotFound}
	svc := NewEventService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	_, err := svc.UpdateStatus(context.Background(), 404, dto.EventStatusUpdateRequest{Status: models.EventStatusApproved}, Actor{ID: 53})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEventCreateStartsPendingWithHistory(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewEventService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	payload := dto.EventCreateRequest{Title: "  Annual Fest  ", Date: time.Now().Add(240 * time.Hour)}
	_, err := svc.Create(context.Background(), payload, Actor{ID: 54, Role: models.RoleStudent})
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	require.Equal(t, "Annual Fest", repo.created.Title)
	require.Equal(t, models.EventStatusPendingApproval, repo.created.Status)
	require.Len(t, repo.created.History, 1)
	require.Equal(t, "created", repo.created.History[0].Action)
}
