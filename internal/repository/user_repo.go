package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/models"
)

// UserRepository handles persistence for user profiles. Registration and
// deletion are owned by the identity system; this layer only reads and
// updates profile fields.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (models.User, error)
	UpdateProfile(ctx context.Context, id uint, fields map[string]interface{}) (models.User, error)
	UpdateAvatar(ctx context.Context, id uint, url string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository constructs a repository backed by GORM.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uint, fields map[string]interface{}) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	if err := r.db.WithContext(ctx).Model(&user).Updates(fields).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *userRepository) UpdateAvatar(ctx context.Context, id uint, url string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("avatar_url", url).Error
}
