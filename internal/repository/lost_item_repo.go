package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/models"
)

// LostItemRepository handles persistence for lost-and-found records.
type LostItemRepository interface {
	Create(ctx context.Context, item *models.LostItem) error
	FindByID(ctx context.Context, id uint) (models.LostItem, error)
	List(ctx context.Context, status string) ([]models.LostItem, error)
	UpdateStatus(ctx context.Context, id uint, status string) (models.LostItem, error)
}

type lostItemRepository struct {
	db *gorm.DB
}

// NewLostItemRepository constructs a repository backed by GORM.
func NewLostItemRepository(db *gorm.DB) LostItemRepository {
	return &lostItemRepository{db: db}
}

func (r *lostItemRepository) Create(ctx context.Context, item *models.LostItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *lostItemRepository) FindByID(ctx context.Context, id uint) (models.LostItem, error) {
	var item models.LostItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return models.LostItem{}, err
	}
	return item, nil
}

func (r *lostItemRepository) List(ctx context.Context, status string) ([]models.LostItem, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var items []models.LostItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *lostItemRepository) UpdateStatus(ctx context.Context, id uint, status string) (models.LostItem, error) {
	var item models.LostItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return models.LostItem{}, err
	}
	if err := r.db.WithContext(ctx).Model(&item).Update("status", status).Error; err != nil {
		return models.LostItem{}, err
	}
	return item, nil
}
