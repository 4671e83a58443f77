package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/repository"
)

// ComplaintService owns complaint intake and the faculty-side status workflow.
type ComplaintService interface {
	Create(ctx context.Context, userID uint, payload dto.ComplaintCreateRequest) (dto.ComplaintSummary, error)
	ListMine(ctx context.Context, userID uint) ([]dto.ComplaintSummary, error)
	UpdateStatus(ctx context.Context, id uint, payload dto.ComplaintStatusUpdateRequest, actor Actor) (dto.ComplaintSummary, error)
}

type complaintService struct {
	repo          repository.ComplaintRepository
	notifications NotificationService
	validator     *validator.Validate
	logger        zerolog.Logger
}

// NewComplaintService constructs the complaint service.
func NewComplaintService(repo repository.ComplaintRepository, notifications NotificationService, validate *validator.Validate, logger zerolog.Logger) ComplaintService {
	return &complaintService{
		repo:          repo,
		notifications: notifications,
		validator:     validate,
		logger:        logger.With().Str("component", "complaint_service").Logger(),
	}
}

func (s *complaintService) Create(ctx context.Context, userID uint, payload dto.ComplaintCreateRequest) (dto.ComplaintSummary, error) {
	subject := strings.TrimSpace(payload.Subject)
	description := strings.TrimSpace(payload.Description)
	if subject == "" || description == "" {
		return dto.ComplaintSummary{}, fmt.Errorf("%w: subject and description are required", ErrValidationFailed)
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.ComplaintSummary{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	complaint := models.Complaint{
		UserID:      userID,
		Category:    strings.TrimSpace(payload.Category),
		Subject:     subject,
		Description: description,
		Status:      models.ComplaintStatusPending,
	}

	if err := s.repo.Create(ctx, &complaint); err != nil {
		return dto.ComplaintSummary{}, err
	}

	s.logger.Info().Uint("complaint_id", complaint.ID).Uint("user_id", userID).Msg("complaint raised")
	return dto.NewComplaintSummary(complaint), nil
}

func (s *complaintService) ListMine(ctx context.Context, userID uint) ([]dto.ComplaintSummary, error) {
	complaints, err := s.repo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	return dto.NewComplaintSummarySlice(complaints), nil
}

// UpdateStatus progresses a complaint and tells the owning student about it.
// The notification is best-effort; the status change is the source of truth.
func (s *complaintService) UpdateStatus(ctx context.Context, id uint, payload dto.ComplaintStatusUpdateRequest, actor Actor) (dto.ComplaintSummary, error) {
	status := CanonicalComplaintStatus(payload.Status)
	if !models.KnownComplaintStatus(status) {
		return dto.ComplaintSummary{}, fmt.Errorf("%w: unknown complaint status %q", ErrValidationFailed, payload.Status)
	}

	complaint, err := s.repo.UpdateStatus(ctx, id, status, strings.TrimSpace(payload.Response), strings.TrimSpace(payload.InternalNote))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ComplaintSummary{}, ErrNotFound
		}
		return dto.ComplaintSummary{}, err
	}
	complaint.Status = status

	if s.notifications != nil {
		message := fmt.Sprintf("Your complaint %q is now %s.", complaint.Subject, status)
		if _, err := s.notifications.Publish(ctx, complaint.UserID, "Complaint update", "complaint", message); err != nil {
			s.logger.Warn().Err(err).Uint("complaint_id", id).Msg("failed to notify complaint owner")
		}
	}

	s.logger.Info().
		Uint("complaint_id", id).
		Uint("actor_id", actor.ID).
		Str("status", status).
		Msg("complaint status updated")

	return dto.NewComplaintSummary(complaint), nil
}
