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

// ClubService manages the club directory.
type ClubService interface {
	List(ctx context.Context, status string) ([]dto.ClubResponse, error)
	Create(ctx context.Context, payload dto.ClubCreateRequest) (dto.ClubResponse, error)
	UpdateStatus(ctx context.Context, id uint, payload dto.StatusUpdateRequest) (dto.ClubResponse, error)
}

type clubService struct {
	repo      repository.ClubRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewClubService constructs the club service.
func NewClubService(repo repository.ClubRepository, validate *validator.Validate, logger zerolog.Logger) ClubService {
	return &clubService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "club_service").Logger(),
	}
}

func (s *clubService) List(ctx context.Context, status string) ([]dto.ClubResponse, error) {
	if status != "" && !models.KnownClubStatus(status) {
		return nil, fmt.Errorf("%w: unknown club status %q", ErrValidationFailed, status)
	}

	clubs, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return dto.NewClubResponseSlice(clubs), nil
}

func (s *clubService) Create(ctx context.Context, payload dto.ClubCreateRequest) (dto.ClubResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClubResponse{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	club := models.Club{
		Name:        strings.TrimSpace(payload.Name),
		Description: strings.TrimSpace(payload.Description),
		Category:    strings.TrimSpace(payload.Category),
		Status:      models.ClubStatusActive,
	}
	if club.Name == "" {
		return dto.ClubResponse{}, fmt.Errorf("%w: name is required", ErrValidationFailed)
	}

	if err := s.repo.Create(ctx, &club); err != nil {
		return dto.ClubResponse{}, err
	}

	s.logger.Info().Uint("club_id", club.ID).Str("name", club.Name).Msg("club created")
	return dto.NewClubResponse(club), nil
}

func (s *clubService) UpdateStatus(ctx context.Context, id uint, payload dto.StatusUpdateRequest) (dto.ClubResponse, error) {
	if !models.KnownClubStatus(payload.Status) {
		return dto.ClubResponse{}, fmt.Errorf("%w: unknown club status %q", ErrValidationFailed, payload.Status)
	}

	club, err := s.repo.UpdateStatus(ctx, id, payload.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClubResponse{}, ErrNotFound
		}
		return dto.ClubResponse{}, err
	}
	return dto.NewClubResponse(club), nil
}
