package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/models"
)

// PlacementRepository handles persistence for placement drives.
type PlacementRepository interface {
	Create(ctx context.Context, drive *models.PlacementDrive) error
	FindByID(ctx context.Context, id uint) (models.PlacementDrive, error)
	List(ctx context.Context, status string) ([]models.PlacementDrive, error)
	UpdateStatus(ctx context.Context, id uint, status string) (models.PlacementDrive, error)
}

type placementRepository struct {
	db *gorm.DB
}

// NewPlacementRepository constructs a repository backed by GORM.
func NewPlacementRepository(db *gorm.DB) PlacementRepository {
	return &placementRepository{db: db}
}

func (r *placementRepository) Create(ctx context.Context, drive *models.PlacementDrive) error {
	return r.db.WithContext(ctx).Create(drive).Error
}

func (r *placementRepository) FindByID(ctx context.Context, id uint) (models.PlacementDrive, error) {
	var drive models.PlacementDrive
	if err := r.db.WithContext(ctx).First(&drive, id).Error; err != nil {
		return models.PlacementDrive{}, err
	}
	return drive, nil
}

func (r *placementRepository) List(ctx context.Context, status string) ([]models.PlacementDrive, error) {
	query := r.db.WithContext(ctx).Order("drive_date ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var drives []models.PlacementDrive
	if err := query.Find(&drives).Error; err != nil {
		return nil, err
	}
	return drives, nil
}

func (r *placementRepository) UpdateStatus(ctx context.Context, id uint, status string) (models.PlacementDrive, error) {
	var drive models.PlacementDrive
	if err := r.db.WithContext(ctx).First(&drive, id).Error; err != nil {
		return models.PlacementDrive{}, err
	}
	if err := r.db.WithContext(ctx).Model(&drive).Update("status", status).Error; err != nil {
		return models.PlacementDrive{}, err
	}
	return drive, nil
}
