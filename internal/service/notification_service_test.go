package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/repository"
)

func (s *stubNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	notification.ID = 101
	s.created = notification
	return nil
}

func (s *stubNotificationRepo) MarkRead(ctx context.Context, id, userID uint) (models.Notification, error) {
	if s.markReadErr != nil {
		return models.Notification{}, s.markReadErr
	}
	return models.Notification{ID: id, UserID: userID, Read: true}, nil
}

func TestNotificationPublishSanitizesAndBroadcasts(t *testing.T) {
	repo := &stubNotificationRepo{}
	cache := testRedis(t)
	svc := NewNotificationService(repo, cache, "campus", nil, testLogger())

	stream, cleanup := svc.Subscribe(7)
	defer cleanup()

	published, err := svc.Publish(context.Background(), 7, " Update ", "complaint", `<b>resolved</b> your complaint`)
	require.NoError(t, err)

	require.Equal(t, "Update", published.Title)
	require.Equal(t, "resolved your complaint", published.Message)
	require.NotNil(t, repo.created)
	require.Equal(t, "resolved your complaint", repo.created.Message)

	select {
	case received := <-stream:
		require.Equal(t, published.ID, received.ID)
		require.Equal(t, "resolved your complaint", received.Message)
	case <-time.After(time.Second):
		t.Fatal("expected the subscriber to receive the published notification")
	}
}

func TestNotificationPublishRejectsEmptyMessage(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, nil, "", nil, testLogger())

	_, err := svc.Publish(context.Background(), 7, "t", "generic", "<script>alert(1)</script>")
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Nil(t, repo.created)
}

func TestNotificationFeedUnreadCountScopedToPage(t *testing.T) {
	repo := &stubNotificationRepo{page: []models.Notification{
		{ID: 1, UserID: 7, Message: "a"},
		{ID: 2, UserID: 7, Message: "b", Read: true},
		{ID: 3, UserID: 7, Message: "c"},
	}}
	svc := NewNotificationService(repo, nil, "", nil, testLogger())

	feed, err := svc.Feed(context.Background(), 7, 3, 0)
	require.NoError(t, err)
	require.Len(t, feed.Notifications, 3)
	require.Equal(t, 2, feed.UnreadCount)
}

func TestNotificationFeedUnreadCountExcludesUnreadBeyondPage(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Notification{}))

	const userID = 9106
	base := time.Now().UTC()
	for i := 0; i < 15; i++ {
		// i counts backwards in time, so i 0..9 form the returned page.
		// Three of the page entries are read; the five oldest rows stay
		// unread but fall outside the page.
		require.NoError(t, db.Create(&models.Notification{
			UserID:    userID,
			Message:   "m",
			Read:      i == 1 || i == 4 || i == 7,
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}).Error)
	}

	svc := NewNotificationService(repository.NewNotificationRepository(db), nil, "", nil, testLogger())

	feed, err := svc.Feed(context.Background(), userID, 10, 0)
	require.NoError(t, err)
	require.Len(t, feed.Notifications, 10)
	require.Equal(t, 7, feed.UnreadCount, "badge counts unread entries in the returned page, not the 12 unread overall")
}

func TestNotificationMarkReadUnknownRowMapsNotFound(t *testing.T) {
	repo := &stubNotificationRepo{markReadErr: gorm.ErrRecordNotFound}
	svc := NewNotificationService(repo, nil, "", nil, testLogger())

	_, err := svc.MarkRead(context.Background(), 999, 7)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNotificationHandleEventIgnoresOwnNode(t *testing.T) {
	svc := NewNotificationService(&stubNotificationRepo{}, nil, "", nil, testLogger()).(*notificationService)

	stream, cleanup := svc.Subscribe(9)
	defer cleanup()

	remote := notificationEvent{
		Source:       "another-node",
		Notification: dto.NotificationResponse{ID: 55, UserID: 9, Message: "cross-node"},
		SentAt:       time.Now().UTC(),
	}
	payload, err := json.Marshal(remote)
	require.NoError(t, err)
	svc.handleEvent(payload)

	select {
	case received := <-stream:
		require.Equal(t, uint(55), received.ID)
		require.Equal(t, "generic", received.Type, "untyped cross-node events default to generic")
	case <-time.After(time.Second):
		t.Fatal("expected the remote event to reach local subscribers")
	}

	own := remote
	own.Source = svc.nodeID
	payload, err = json.Marshal(own)
	require.NoError(t, err)
	svc.handleEvent(payload)

	select {
	case <-stream:
		t.Fatal("an event originating from this node must not be re-broadcast")
	case <-time.After(100 * time.Millisecond):
	}
}
