package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-api/internal/models"
)

func TestNotificationRepositoryMarkReadIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	notification := models.Notification{UserID: 9101, Title: "Welcome", Message: "hello"}
	require.NoError(t, db.Create(&notification).Error)

	first, err := repo.MarkRead(context.Background(), notification.ID, 9101)
	require.NoError(t, err)
	require.True(t, first.Read)

	second, err := repo.MarkRead(context.Background(), notification.ID, 9101)
	require.NoError(t, err)
	require.True(t, second.Read)
}

func TestNotificationRepositoryMarkReadScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	notification := models.Notification{UserID: 9102, Title: "Private", Message: "hello"}
	require.NoError(t, db.Create(&notification).Error)

	_, err := repo.MarkRead(context.Background(), notification.ID, 9103)
	require.Error(t, err, "another user's notification must not be reachable")
}

func TestNotificationRepositoryListByUserDefaultsPageSize(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	const userID = 9104
	for i := 0; i < 15; i++ {
		require.NoError(t, db.Create(&models.Notification{UserID: userID, Message: "m"}).Error)
	}

	page, err := repo.ListByUser(context.Background(), userID, 0, 0)
	require.NoError(t, err)
	require.Len(t, page, 10)
}

func TestNotificationRepositoryMarkAllRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	const userID = 9105
	require.NoError(t, db.Create(&models.Notification{UserID: userID, Message: "a"}).Error)
	require.NoError(t, db.Create(&models.Notification{UserID: userID, Message: "b"}).Error)
	require.NoError(t, db.Create(&models.Notification{UserID: userID, Message: "c", Read: true}).Error)

	updated, err := repo.MarkAllRead(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, int64(2), updated)

	again, err := repo.MarkAllRead(context.Background(), userID)
	require.NoError(t, err)
	require.Zero(t, again)
}
