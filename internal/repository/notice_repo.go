package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/models"
)

// NoticeRepository handles persistence for notices.
type NoticeRepository interface {
	Create(ctx context.Context, notice *models.Notice) error
	FindByID(ctx context.Context, id uint) (models.Notice, error)
	ListVisible(ctx context.Context, audience string, limit int) ([]models.Notice, error)
	ListAll(ctx context.Context) ([]models.Notice, error)
	Update(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id uint) error
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository constructs a repository backed by GORM.
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) FindByID(ctx context.Context, id uint) (models.Notice, error) {
	var notice models.Notice
	if err := r.db.WithContext(ctx).First(&notice, id).Error; err != nil {
		return models.Notice{}, err
	}
	return notice, nil
}

// ListVisible returns active notices whose audience matches the requesting role
// or the universal "all" value, newest first.
func (r *noticeRepository) ListVisible(ctx context.Context, audience string, limit int) ([]models.Notice, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ? AND (audience = ? OR audience = ?)", true, audience, models.NoticeAudienceAll).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var notices []models.Notice
	if err := query.Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *noticeRepository) ListAll(ctx context.Context) ([]models.Notice, error) {
	var notices []models.Notice
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *noticeRepository) Update(ctx context.Context, notice *models.Notice) error {
	return r.db.WithContext(ctx).Save(notice).Error
}

func (r *noticeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Notice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
