package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/repository"
)

// HostelComplaintService manages hostel maintenance complaints. The hostel
// track uses its own status vocabulary, separate from academic complaints.
type HostelComplaintService interface {
	ListMine(ctx context.Context, userID uint) ([]dto.HostelComplaintResponse, error)
	List(ctx context.Context, status string) ([]dto.HostelComplaintResponse, error)
	Create(ctx context.Context, actor Actor, payload dto.HostelComplaintCreateRequest) (dto.HostelComplaintResponse, error)
	UpdateStatus(ctx context.Context, id uint, payload dto.StatusUpdateRequest) (dto.HostelComplaintResponse, error)
}

type hostelComplaintService struct {
	repo          repository.HostelComplaintRepository
	notifications NotificationService
	validator     *validator.Validate
	sanitizer     *bluemonday.Policy
	logger        zerolog.Logger
}

// NewHostelComplaintService constructs the hostel complaint service.
func NewHostelComplaintService(repo repository.HostelComplaintRepository, notifications NotificationService, validate *validator.Validate, logger zerolog.Logger) HostelComplaintService {
	return &hostelComplaintService{
		repo:          repo,
		notifications: notifications,
		validator:     validate,
		sanitizer:     bluemonday.StrictPolicy(),
		logger:        logger.With().Str("component", "hostel_complaint_service").Logger(),
	}
}

func (s *hostelComplaintService) ListMine(ctx context.Context, userID uint) ([]dto.HostelComplaintResponse, error) {
	complaints, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewHostelComplaintResponseSlice(complaints), nil
}

func (s *hostelComplaintService) List(ctx context.Context, status string) ([]dto.HostelComplaintResponse, error) {
	if status != "" && !models.KnownHostelComplaintStatus(status) {
		return nil, fmt.Errorf("%w: unknown hostel complaint status %q", ErrValidationFailed, status)
	}

	complaints, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return dto.NewHostelComplaintResponseSlice(complaints), nil
}

func (s *hostelComplaintService) Create(ctx context.Context, actor Actor, payload dto.HostelComplaintCreateRequest) (dto.HostelComplaintResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.HostelComplaintResponse{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	complaint := models.HostelComplaint{
		UserID:      actor.ID,
		Block:       strings.TrimSpace(payload.Block),
		Room:        strings.TrimSpace(payload.Room),
		Category:    strings.TrimSpace(payload.Category),
		Description: strings.TrimSpace(s.sanitizer.Sanitize(payload.Description)),
		Status:      models.HostelComplaintStatusPending,
	}
	if complaint.Description == "" {
		return dto.HostelComplaintResponse{}, fmt.Errorf("%w: description is required", ErrValidationFailed)
	}

	if err := s.repo.Create(ctx, &complaint); err != nil {
		return dto.HostelComplaintResponse{}, err
	}

	s.logger.Info().Uint("complaint_id", complaint.ID).Uint("user_id", actor.ID).Str("block", complaint.Block).Msg("hostel complaint created")
	return dto.NewHostelComplaintResponse(complaint), nil
}

func (s *hostelComplaintService) UpdateStatus(ctx context.Context, id uint, payload dto.StatusUpdateRequest) (dto.HostelComplaintResponse, error) {
	if !models.KnownHostelComplaintStatus(payload.Status) {
		return dto.HostelComplaintResponse{}, fmt.Errorf("%w: unknown hostel complaint status %q", ErrValidationFailed, payload.Status)
	}

	complaint, err := s.repo.UpdateStatus(ctx, id, payload.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.HostelComplaintResponse{}, ErrNotFound
		}
		return dto.HostelComplaintResponse{}, err
	}

	if s.notifications != nil {
		message := fmt.Sprintf("Your hostel complaint for block %s is now %s.", complaint.Block, complaint.Status)
		if _, err := s.notifications.Publish(ctx, complaint.UserID, "Hostel complaint update", "hostel", message); err != nil {
			s.logger.Warn().Err(err).Uint("complaint_id", complaint.ID).Msg("notification publish failed")
		}
	}

	return dto.NewHostelComplaintResponse(complaint), nil
}
