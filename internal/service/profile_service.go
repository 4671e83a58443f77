package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/repository"
)

// FileStorage abstracts avatar upload destinations.
type FileStorage interface {
	Upload(ctx context.Context, name string, reader io.Reader) (string, error)
}

// ProfileService serves and mutates the caller's own profile.
type ProfileService interface {
	Get(ctx context.Context, userID uint) (dto.UserProfile, error)
	Update(ctx context.Context, userID uint, payload dto.ProfileUpdateRequest) (dto.UserProfile, error)
	UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (dto.AvatarUploadResponse, error)
}

type profileService struct {
	repo      repository.UserRepository
	storage   FileStorage
	validator *validator.Validate
	logger    zerolog.Logger
	maxSize   int64
}

// NewProfileService constructs the profile service.
func NewProfileService(repo repository.UserRepository, storage FileStorage, validate *validator.Validate, maxSizeMB int, logger zerolog.Logger) ProfileService {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	return &profileService{
		repo:      repo,
		storage:   storage,
		validator: validate,
		logger:    logger.With().Str("component", "profile_service").Logger(),
		maxSize:   int64(maxSizeMB) * 1024 * 1024,
	}
}

func (s *profileService) Get(ctx context.Context, userID uint) (dto.UserProfile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserProfile{}, ErrNotFound
		}
		return dto.UserProfile{}, err
	}
	return dto.NewUserProfile(user), nil
}

func (s *profileService) Update(ctx context.Context, userID uint, payload dto.ProfileUpdateRequest) (dto.UserProfile, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return dto.UserProfile{}, fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserProfile{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	fields := map[string]interface{}{
		"name":       strings.TrimSpace(payload.Name),
		"phone":      strings.TrimSpace(payload.Phone),
		"program":    strings.TrimSpace(payload.Program),
		"department": strings.TrimSpace(payload.Department),
	}
	if payload.Year > 0 {
		fields["year"] = payload.Year
	}

	user, err := s.repo.UpdateProfile(ctx, userID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserProfile{}, ErrNotFound
		}
		return dto.UserProfile{}, err
	}
	return dto.NewUserProfile(user), nil
}

// UploadAvatar accepts image payloads only, sniffing the actual content rather
// than trusting the declared content type.
func (s *profileService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (dto.AvatarUploadResponse, error) {
	if file == nil || file.Size == 0 {
		return dto.AvatarUploadResponse{}, fmt.Errorf("%w: avatar file is required", ErrValidationFailed)
	}
	if file.Size > s.maxSize {
		return dto.AvatarUploadResponse{}, fmt.Errorf("%w: avatar exceeds maximum allowed size", ErrValidationFailed)
	}

	source, err := file.Open()
	if err != nil {
		return dto.AvatarUploadResponse{}, err
	}
	defer source.Close()

	content, err := io.ReadAll(io.LimitReader(source, s.maxSize+1))
	if err != nil {
		return dto.AvatarUploadResponse{}, err
	}
	if int64(len(content)) > s.maxSize {
		return dto.AvatarUploadResponse{}, fmt.Errorf("%w: avatar exceeds maximum allowed size", ErrValidationFailed)
	}

	detected := mimetype.Detect(content)
	if !strings.HasPrefix(detected.String(), "image/") {
		return dto.AvatarUploadResponse{}, fmt.Errorf("%w: avatar must be an image, got %s", ErrValidationFailed, detected)
	}

	name := fmt.Sprintf("avatars/user-%d", userID)
	url, err := s.storage.Upload(ctx, name, bytes.NewReader(content))
	if err != nil {
		return dto.AvatarUploadResponse{}, err
	}

	if err := s.repo.UpdateAvatar(ctx, userID, url); err != nil {
		return dto.AvatarUploadResponse{}, err
	}

	s.logger.Info().Uint("user_id", userID).Str("mime", detected.String()).Msg("avatar updated")
	return dto.AvatarUploadResponse{URL: url}, nil
}
