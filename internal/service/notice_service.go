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

// NoticeService owns the notice lifecycle and the visibility rules applied to
// dashboard feeds.
type NoticeService interface {
	ListVisible(ctx context.Context, role string, limit int) ([]dto.NoticeResponse, error)
	Create(ctx context.Context, payload dto.NoticeCreateRequest, actor Actor) (dto.NoticeResponse, error)
	Update(ctx context.Context, id uint, payload dto.NoticeUpdateRequest) (dto.NoticeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type noticeService struct {
	repo      repository.NoticeRepository
	validator *validator.Validate
	policy    *bluemonday.Policy
	logger    zerolog.Logger
}

// NewNoticeService constructs the notice service.
func NewNoticeService(repo repository.NoticeRepository, validate *validator.Validate, logger zerolog.Logger) NoticeService {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("p", "strong", "em", "a", "ul", "ol", "li", "br")
	policy.AllowAttrs("href", "title", "target").OnElements("a")
	return &noticeService{
		repo:      repo,
		validator: validate,
		policy:    policy,
		logger:    logger.With().Str("component", "notice_service").Logger(),
	}
}

// ListVisible returns the notices eligible for the given role: active rows
// targeted at that role or at everyone. Admins see the full set.
func (s *noticeService) ListVisible(ctx context.Context, role string, limit int) ([]dto.NoticeResponse, error) {
	if role == models.RoleAdmin {
		notices, err := s.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return dto.NewNoticeResponseSlice(notices), nil
	}

	notices, err := s.repo.ListVisible(ctx, role, limit)
	if err != nil {
		return nil, err
	}
	return dto.NewNoticeResponseSlice(notices), nil
}

func (s *noticeService) Create(ctx context.Context, payload dto.NoticeCreateRequest, actor Actor) (dto.NoticeResponse, error) {
	title, description, err := s.validateContent(payload.Title, payload.Description)
	if err != nil {
		return dto.NoticeResponse{}, err
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.NoticeResponse{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	notice := models.Notice{
		Title:       title,
		Description: description,
		Category:    normalizeCategory(payload.Category),
		Audience:    normalizeAudience(payload.Audience),
		IsActive:    true,
		CreatedBy:   actor.ID,
	}

	if err := s.repo.Create(ctx, &notice); err != nil {
		return dto.NoticeResponse{}, err
	}

	s.logger.Info().Uint("notice_id", notice.ID).Uint("created_by", actor.ID).Msg("notice created")
	return dto.NewNoticeResponse(notice), nil
}

func (s *noticeService) Update(ctx context.Context, id uint, payload dto.NoticeUpdateRequest) (dto.NoticeResponse, error) {
	title, description, err := s.validateContent(payload.Title, payload.Description)
	if err != nil {
		return dto.NoticeResponse{}, err
	}

	notice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NoticeResponse{}, ErrNotFound
		}
		return dto.NoticeResponse{}, err
	}

	notice.Title = title
	notice.Description = description
	notice.Category = normalizeCategory(payload.Category)
	notice.Audience = normalizeAudience(payload.Audience)
	if payload.IsActive != nil {
		notice.IsActive = *payload.IsActive
	}

	if err := s.repo.Update(ctx, &notice); err != nil {
		return dto.NoticeResponse{}, err
	}
	return dto.NewNoticeResponse(notice), nil
}

// Delete removes the notice unconditionally. Confirmation is the caller's
// responsibility; by the time this runs the decision has been made.
func (s *noticeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.logger.Info().Uint("notice_id", id).Msg("notice deleted")
	return nil
}

// validateContent enforces the non-empty-after-trim rule and sanitizes the
// body before it can reach storage.
func (s *noticeService) validateContent(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(s.policy.Sanitize(description))
	if title == "" {
		return "", "", fmt.Errorf("%w: title is required", ErrValidationFailed)
	}
	if description == "" {
		return "", "", fmt.Errorf("%w: description is required", ErrValidationFailed)
	}
	return title, description, nil
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return models.NoticeDefaultCategory
	}
	return category
}

func normalizeAudience(audience string) string {
	audience = strings.ToLower(strings.TrimSpace(audience))
	if audience == "" {
		return models.NoticeAudienceAll
	}
	return audience
}
