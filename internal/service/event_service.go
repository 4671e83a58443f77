package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/repository"
)

// Reachable target states per current state. Leaving a decided state
// (Approved/Rejected) is a "change decision" and requires a remark; moving an
// approved event to Completed does not.
var eventTransitions = map[string]map[string]bool{
	models.EventStatusPendingApproval: {
		models.EventStatusApproved: true,
		models.EventStatusRejected: true,
	},
	models.EventStatusApproved: {
		models.EventStatusRejected:        true,
		models.EventStatusPendingApproval: true,
		models.EventStatusCompleted:       true,
	},
	models.EventStatusRejected: {
		models.EventStatusApproved:        true,
		models.EventStatusPendingApproval: true,
	},
	models.EventStatusCompleted: {},
}

// EventService owns the event approval workflow and its audit trail.
type EventService interface {
	Create(ctx context.Context, payload dto.EventCreateRequest, actor Actor) (dto.EventResponse, error)
	List(ctx context.Context) ([]dto.EventResponse, error)
	Get(ctx context.Context, id uint) (dto.EventResponse, error)
	UpdateStatus(ctx context.Context, id uint, payload dto.EventStatusUpdateRequest, actor Actor) (dto.EventResponse, error)
}

type eventService struct {
	repo      repository.EventRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewEventService constructs the event service.
func NewEventService(repo repository.EventRepository, validate *validator.Validate, logger zerolog.Logger) EventService {
	return &eventService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "event_service").Logger(),
	}
}

func (s *eventService) Create(ctx context.Context, payload dto.EventCreateRequest, actor Actor) (dto.EventResponse, error) {
	if strings.TrimSpace(payload.Title) == "" {
		return dto.EventResponse{}, fmt.Errorf("%w: title is required", ErrValidationFailed)
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.EventResponse{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	event := models.Event{
		Title:            strings.TrimSpace(payload.Title),
		Description:      payload.Description,
		Date:             payload.Date,
		Venue:            payload.Venue,
		CoordinatorName:  payload.CoordinatorName,
		CoordinatorEmail: payload.CoordinatorEmail,
		CoordinatorPhone: payload.CoordinatorPhone,
		Department:       payload.Department,
		Status:           models.EventStatusPendingApproval,
		History: []models.EventHistory{{
			Action:    "created",
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Metadata:  datatypes.JSONMap{"to": models.EventStatusPendingApproval},
		}},
	}

	if err := s.repo.Create(ctx, &event); err != nil {
		return dto.EventResponse{}, err
	}

	s.logger.Info().Uint("event_id", event.ID).Msg("event registered for approval")
	return dto.NewEventResponse(event), nil
}

func (s *eventService) List(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewEventResponseSlice(events), nil
}

func (s *eventService) Get(ctx context.Context, id uint) (dto.EventResponse, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EventResponse{}, ErrNotFound
		}
		return dto.EventResponse{}, err
	}
	return dto.NewEventResponse(event), nil
}

// UpdateStatus applies one transition of the approval state machine. The
// transition and its history entry commit in the same transaction; rejected
// requests leave no trace.
func (s *eventService) UpdateStatus(ctx context.Context, id uint, payload dto.EventStatusUpdateRequest, actor Actor) (dto.EventResponse, error) {
	target := strings.TrimSpace(payload.Status)
	remark := strings.TrimSpace(payload.Remarks)

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EventResponse{}, ErrNotFound
		}
		return dto.EventResponse{}, err
	}

	reachable := eventTransitions[event.Status]
	if !reachable[target] {
		return dto.EventResponse{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, event.Status, target)
	}

	action := transitionAction(event.Status, target)
	if action == "change_decision" && remark == "" {
		return dto.EventResponse{}, fmt.Errorf("%w: a remark is required to change a decision", ErrValidationFailed)
	}

	entry := models.EventHistory{
		Action:    action,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Remark:    remark,
		Metadata:  datatypes.JSONMap{"from": event.Status, "to": target},
	}

	updated, err := s.repo.UpdateStatusWithHistory(ctx, id, target, entry)
	if err != nil {
		return dto.EventResponse{}, err
	}

	s.logger.Info().
		Uint("event_id", id).
		Str("from", event.Status).
		Str("to", target).
		Str("action", action).
		Msg("event status changed")

	return s.Get(ctx, updated.ID)
}

func transitionAction(from, to string) string {
	switch {
	case from == models.EventStatusPendingApproval && to == models.EventStatusApproved:
		return "approved"
	case from == models.EventStatusPendingApproval && to == models.EventStatusRejected:
		return "rejected"
	case from == models.EventStatusApproved && to == models.EventStatusCompleted:
		return "completed"
	default:
		return "change_decision"
	}
}
