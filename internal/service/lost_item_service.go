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

// LostItemService manages the lost-and-found board.
type LostItemService interface {
	List(ctx context.Context, status string) ([]dto.LostItemResponse, error)
	Create(ctx context.Context, actor Actor, payload dto.LostItemCreateRequest) (dto.LostItemResponse, error)
	UpdateStatus(ctx context.Context, id uint, payload dto.StatusUpdateRequest) (dto.LostItemResponse, error)
}

type lostItemService struct {
	repo      repository.LostItemRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewLostItemService constructs the lost-and-found service.
func NewLostItemService(repo repository.LostItemRepository, validate *validator.Validate, logger zerolog.Logger) LostItemService {
	return &lostItemService{
		repo:      repo,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "lost_item_service").Logger(),
	}
}

func (s *lostItemService) List(ctx context.Context, status string) ([]dto.LostItemResponse, error) {
	if status != "" && !models.KnownLostItemStatus(status) {
		return nil, fmt.Errorf("%w: unknown item status %q", ErrValidationFailed, status)
	}

	items, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return dto.NewLostItemResponseSlice(items), nil
}

func (s *lostItemService) Create(ctx context.Context, actor Actor, payload dto.LostItemCreateRequest) (dto.LostItemResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LostItemResponse{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	status := payload.Status
	if status == "" {
		status = models.LostItemStatusLost
	}

	item := models.LostItem{
		UserID:      actor.ID,
		Title:       strings.TrimSpace(s.sanitizer.Sanitize(payload.Title)),
		Description: strings.TrimSpace(s.sanitizer.Sanitize(payload.Description)),
		Category:    strings.TrimSpace(payload.Category),
		Location:    strings.TrimSpace(payload.Location),
		Status:      status,
	}
	if item.Title == "" {
		return dto.LostItemResponse{}, fmt.Errorf("%w: title is required", ErrValidationFailed)
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		return dto.LostItemResponse{}, err
	}

	s.logger.Info().Uint("item_id", item.ID).Uint("user_id", actor.ID).Str("status", item.Status).Msg("lost item reported")
	return dto.NewLostItemResponse(item), nil
}

func (s *lostItemService) UpdateStatus(ctx context.Context, id uint, payload dto.StatusUpdateRequest) (dto.LostItemResponse, error) {
	if !models.KnownLostItemStatus(payload.Status) {
		return dto.LostItemResponse{}, fmt.Errorf("%w: unknown item status %q", ErrValidationFailed, payload.Status)
	}

	item, err := s.repo.UpdateStatus(ctx, id, payload.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LostItemResponse{}, ErrNotFound
		}
		return dto.LostItemResponse{}, err
	}
	return dto.NewLostItemResponse(item), nil
}
