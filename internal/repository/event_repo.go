package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/models"
)

// EventRepository handles persistence for events and their append-only history.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	UpdateStatusWithHistory(ctx context.Context, id uint, status string, entry models.EventHistory) (models.Event, error)
	ListHistory(ctx context.Context, eventID uint) ([]models.EventHistory, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository constructs a repository backed by GORM.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&event, id).Error; err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateStatusWithHistory applies the status change and appends the history
// entry in one transaction so the audit trail can never miss a transition.
func (r *eventRepository) UpdateStatusWithHistory(ctx context.Context, id uint, status string, entry models.EventHistory) (models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&event).Update("status", status).Error; err != nil {
			return err
		}

		entry.EventID = event.ID
		return tx.Create(&entry).Error
	})
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (r *eventRepository) ListHistory(ctx context.Context, eventID uint) ([]models.EventHistory, error) {
	var history []models.EventHistory
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}
