package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campushub/campus-api/internal/models"
)

var (
	// ErrPollClosed indicates a vote was cast on a closed or expired poll.
	ErrPollClosed = errors.New("poll is closed")
	// ErrOptionNotInPoll indicates the option does not belong to the poll.
	ErrOptionNotInPoll = errors.New("option does not belong to poll")
)

// PollRepository handles persistence for polls and vote tallies.
type PollRepository interface {
	Create(ctx context.Context, poll *models.Poll) error
	FindByID(ctx context.Context, id uint) (models.Poll, error)
	List(ctx context.Context) ([]models.Poll, error)
	Vote(ctx context.Context, pollID, optionID uint, now time.Time) (models.Poll, error)
	Close(ctx context.Context, id uint) (models.Poll, error)
}

type pollRepository struct {
	db *gorm.DB
}

// NewPollRepository constructs a repository backed by GORM.
func NewPollRepository(db *gorm.DB) PollRepository {
	return &pollRepository{db: db}
}

func (r *pollRepository) Create(ctx context.Context, poll *models.Poll) error {
	return r.db.WithContext(ctx).Create(poll).Error
}

func (r *pollRepository) FindByID(ctx context.Context, id uint) (models.Poll, error) {
	var poll models.Poll
	if err := r.db.WithContext(ctx).Preload("Options", optionOrder).First(&poll, id).Error; err != nil {
		return models.Poll{}, err
	}
	return poll, nil
}

func (r *pollRepository) List(ctx context.Context) ([]models.Poll, error) {
	var polls []models.Poll
	if err := r.db.WithContext(ctx).
		Preload("Options", optionOrder).
		Order("created_at DESC").
		Find(&polls).Error; err != nil {
		return nil, err
	}
	return polls, nil
}

// Vote increments one option's count and the poll total atomically. The poll
// row is locked for the duration of the transaction so concurrent votes on the
// same poll serialise instead of losing updates, and the closed check happens
// under the same lock.
func (r *pollRepository) Vote(ctx context.Context, pollID, optionID uint, now time.Time) (models.Poll, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var poll models.Poll
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&poll, pollID).Error; err != nil {
			return err
		}

		if poll.Status != models.PollStatusActive {
			return ErrPollClosed
		}
		if poll.EndsAt != nil && now.After(*poll.EndsAt) {
			return ErrPollClosed
		}

		var option models.PollOption
		if err := tx.Where("id = ? AND poll_id = ?", optionID, pollID).First(&option).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOptionNotInPoll
			}
			return err
		}

		if err := tx.Model(&option).UpdateColumn("votes", gorm.Expr("votes + ?", 1)).Error; err != nil {
			return err
		}
		return tx.Model(&poll).UpdateColumn("total_votes", gorm.Expr("total_votes + ?", 1)).Error
	})
	if err != nil {
		return models.Poll{}, err
	}

	return r.FindByID(ctx, pollID)
}

func (r *pollRepository) Close(ctx context.Context, id uint) (models.Poll, error) {
	var poll models.Poll
	if err := r.db.WithContext(ctx).First(&poll, id).Error; err != nil {
		return models.Poll{}, err
	}

	if err := r.db.WithContext(ctx).Model(&poll).Update("status", models.PollStatusClosed).Error; err != nil {
		return models.Poll{}, err
	}
	return r.FindByID(ctx, id)
}

func optionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
