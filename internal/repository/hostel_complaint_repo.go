package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/models"
)

// HostelComplaintRepository handles persistence for hostel complaints.
type HostelComplaintRepository interface {
	Create(ctx context.Context, complaint *models.HostelComplaint) error
	FindByID(ctx context.Context, id uint) (models.HostelComplaint, error)
	ListByUser(ctx context.Context, userID uint) ([]models.HostelComplaint, error)
	List(ctx context.Context, status string) ([]models.HostelComplaint, error)
	UpdateStatus(ctx context.Context, id uint, status string) (models.HostelComplaint, error)
}

type hostelComplaintRepository struct {
	db *gorm.DB
}

// NewHostelComplaintRepository constructs a repository backed by GORM.
func NewHostelComplaintRepository(db *gorm.DB) HostelComplaintRepository {
	return &hostelComplaintRepository{db: db}
}

func (r *hostelComplaintRepository) Create(ctx context.Context, complaint *models.HostelComplaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *hostelComplaintRepository) FindByID(ctx context.Context, id uint) (models.HostelComplaint, error) {
	var complaint models.HostelComplaint
	if err := r.db.WithContext(ctx).First(&complaint, id).Error; err != nil {
		return models.HostelComplaint{}, err
	}
	return complaint, nil
}

func (r *hostelComplaintRepository) ListByUser(ctx context.Context, userID uint) ([]models.HostelComplaint, error) {
	var complaints []models.HostelComplaint
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *hostelComplaintRepository) List(ctx context.Context, status string) ([]models.HostelComplaint, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var complaints []models.HostelComplaint
	if err := query.Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *hostelComplaintRepository) UpdateStatus(ctx context.Context, id uint, status string) (models.HostelComplaint, error) {
	var complaint models.HostelComplaint
	if err := r.db.WithContext(ctx).First(&complaint, id).Error; err != nil {
		return models.HostelComplaint{}, err
	}
	if err := r.db.WithContext(ctx).Model(&complaint).Update("status", status).Error; err != nil {
		return models.HostelComplaint{}, err
	}
	return complaint, nil
}
