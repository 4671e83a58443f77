package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/models"
)

// StatusCount is one row of a grouped status aggregation.
type StatusCount struct {
	Status string
	Count  int64
}

// ComplaintRepository handles persistence for complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	FindByID(ctx context.Context, id uint) (models.Complaint, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]models.Complaint, error)
	ListAssignedSince(ctx context.Context, facultyID uint, since time.Time) ([]models.Complaint, error)
	RecentAssigned(ctx context.Context, facultyID uint, limit int) ([]models.Complaint, error)
	StatusCountsByUser(ctx context.Context, userID uint) ([]StatusCount, error)
	StatusCountsByFaculty(ctx context.Context, facultyID uint) ([]StatusCount, error)
	CountAssignedSince(ctx context.Context, facultyID uint, since time.Time) (int64, error)
	UpdateStatus(ctx context.Context, id uint, status, response, internalNote string) (models.Complaint, error)
}

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository constructs a repository backed by GORM.
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *complaintRepository) FindByID(ctx context.Context, id uint) (models.Complaint, error) {
	var complaint models.Complaint
	if err := r.db.WithContext(ctx).First(&complaint, id).Error; err != nil {
		return models.Complaint{}, err
	}
	return complaint, nil
}

func (r *complaintRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]models.Complaint, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var complaints []models.Complaint
	if err := query.Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) ListAssignedSince(ctx context.Context, facultyID uint, since time.Time) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := r.db.WithContext(ctx).
		Where("faculty_id = ? AND created_at >= ?", facultyID, since).
		Order("created_at ASC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) RecentAssigned(ctx context.Context, facultyID uint, limit int) ([]models.Complaint, error) {
	if limit <= 0 {
		limit = 5
	}

	var complaints []models.Complaint
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("faculty_id = ?", facultyID).
		Order("created_at DESC").
		Limit(limit).
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// StatusCountsByUser groups the principal's complaints by status in a single
// aggregation. Counts reflect the full scoped set regardless of any page size.
func (r *complaintRepository) StatusCountsByUser(ctx context.Context, userID uint) ([]StatusCount, error) {
	return r.statusCounts(ctx, "user_id = ?", userID)
}

func (r *complaintRepository) StatusCountsByFaculty(ctx context.Context, facultyID uint) ([]StatusCount, error) {
	return r.statusCounts(ctx, "faculty_id = ?", facultyID)
}

func (r *complaintRepository) statusCounts(ctx context.Context, condition string, arg interface{}) ([]StatusCount, error) {
	var counts []StatusCount
	if err := r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Select("status, COUNT(*) AS count").
		Where(condition, arg).
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *complaintRepository) CountAssignedSince(ctx context.Context, facultyID uint, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("faculty_id = ? AND created_at >= ?", facultyID, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *complaintRepository) UpdateStatus(ctx context.Context, id uint, status, response, internalNote string) (models.Complaint, error) {
	var complaint models.Complaint
	if err := r.db.WithContext(ctx).First(&complaint, id).Error; err != nil {
		return models.Complaint{}, err
	}

	updates := map[string]interface{}{"status": status}
	if response != "" {
		updates["response"] = response
	}
	if internalNote != "" {
		updates["internal_note"] = internalNote
	}

	if err := r.db.WithContext(ctx).Model(&complaint).Updates(updates).Error; err != nil {
		return models.Complaint{}, err
	}
	return complaint, nil
}
