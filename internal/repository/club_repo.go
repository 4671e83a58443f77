package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/models"
)

// ClubRepository handles persistence for clubs.
type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	FindByID(ctx context.Context, id uint) (models.Club, error)
	List(ctx context.Context, status string) ([]models.Club, error)
	UpdateStatus(ctx context.Context, id uint, status string) (models.Club, error)
}

type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository constructs a repository backed by GORM.
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *models.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

func (r *clubRepository) FindByID(ctx context.Context, id uint) (models.Club, error) {
	var club models.Club
	if err := r.db.WithContext(ctx).First(&club, id).Error; err != nil {
		return models.Club{}, err
	}
	return club, nil
}

func (r *clubRepository) List(ctx context.Context, status string) ([]models.Club, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var clubs []models.Club
	if err := query.Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

func (r *clubRepository) UpdateStatus(ctx context.Context, id uint, status string) (models.Club, error) {
	var club models.Club
	if err := r.db.WithContext(ctx).First(&club, id).Error; err != nil {
		return models.Club{}, err
	}
	if err := r.db.WithContext(ctx).Model(&club).Update("status", status).Error; err != nil {
		return models.Club{}, err
	}
	return club, nil
}
