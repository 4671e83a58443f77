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

// PlacementService manages company recruitment drives.
type PlacementService interface {
	List(ctx context.Context, status string) ([]dto.PlacementResponse, error)
	Create(ctx context.Context, payload dto.PlacementCreateRequest) (dto.PlacementResponse, error)
	UpdateStatus(ctx context.Context, id uint, payload dto.StatusUpdateRequest) (dto.PlacementResponse, error)
}

type placementService struct {
	repo      repository.PlacementRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewPlacementService constructs the placement service.
func NewPlacementService(repo repository.PlacementRepository, validate *validator.Validate, logger zerolog.Logger) PlacementService {
	return &placementService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "placement_service").Logger(),
	}
}

func (s *placementService) List(ctx context.Context, status string) ([]dto.PlacementResponse, error) {
	if status != "" && !models.KnownPlacementStatus(status) {
		return nil, fmt.Errorf("%w: unknown drive status %q", ErrValidationFailed, status)
	}

	drives, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return dto.NewPlacementResponseSlice(drives), nil
}

func (s *placementService) Create(ctx context.Context, payload dto.PlacementCreateRequest) (dto.PlacementResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.PlacementResponse{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	drive := models.PlacementDrive{
		Company:     strings.TrimSpace(payload.Company),
		Role:        strings.TrimSpace(payload.Role),
		Package:     strings.TrimSpace(payload.Package),
		Eligibility: strings.TrimSpace(payload.Eligibility),
		DriveDate:   payload.DriveDate,
		Status:      models.PlacementStatusUpcoming,
	}
	if drive.Company == "" {
		return dto.PlacementResponse{}, fmt.Errorf("%w: company is required", ErrValidationFailed)
	}

	if err := s.repo.Create(ctx, &drive); err != nil {
		return dto.PlacementResponse{}, err
	}

	s.logger.Info().Uint("drive_id", drive.ID).Str("company", drive.Company).Msg("placement drive created")
	return dto.NewPlacementResponse(drive), nil
}

func (s *placementService) UpdateStatus(ctx context.Context, id uint, payload dto.StatusUpdateRequest) (dto.PlacementResponse, error) {
	if !models.KnownPlacementStatus(payload.Status) {
		return dto.PlacementResponse{}, fmt.Errorf("%w: unknown drive status %q", ErrValidationFailed, payload.Status)
	}

	drive, err := s.repo.UpdateStatus(ctx, id, payload.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PlacementResponse{}, ErrNotFound
		}
		return dto.PlacementResponse{}, err
	}
	return dto.NewPlacementResponse(drive), nil
}
