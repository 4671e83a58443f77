package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-api/internal/dto"
)

type stubNotificationService struct {
	feed        dto.NotificationFeedResponse
	marked      dto.NotificationResponse
	markAllRows int64
}

func (s *stubNotificationService) Publish(ctx context.Context, userID uint, title, notifType, message string) (dto.NotificationResponse, error) {
	return dto.NotificationResponse{}, nil
}

func (s *stubNotificationService) Feed(ctx context.Context, userID uint, limit, offset int) (dto.NotificationFeedResponse, error) {
	return s.feed, nil
}

func (s *stubNotificationService) MarkRead(ctx context.Context, id, userID uint) (dto.NotificationResponse, error) {
	return s.marked, nil
}

func (s *stubNotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.markAllRows, nil
}

func (s *stubNotificationService) Subscribe(userID uint) (<-chan dto.NotificationResponse, func()) {
	ch := make(chan dto.NotificationResponse)
	return ch, func() { close(ch) }
}

func (s *stubNotificationService) Start(ctx context.Context) {}

func newNotificationApp(svc *stubNotificationService) *fiber.App {
	handler := NewNotificationHandler(svc, testLogger(), time.Minute)
	return authedApp(90, "student", func(r fiber.Router) { handler.Register(r) })
}

func TestNotificationFeedWrapsPageAndUnreadCount(t *testing.T) {
	svc := &stubNotificationService{feed: dto.NotificationFeedResponse{
		Notifications: []dto.NotificationResponse{{ID: 1, Message: "a"}, {ID: 2, Message: "b", Read: true}},
		UnreadCount:   1,
	}}
	app := newNotificationApp(svc)

	resp := doJSON(t, app, http.MethodGet, "/notifications?limit=10", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, float64(1), data["unreadCount"])
	require.Len(t, data["notifications"], 2)
}

func TestNotificationFeedRejectsMalformedLimit(t *testing.T) {
	app := newNotificationApp(&stubNotificationService{})

	resp := doJSON(t, app, http.MethodGet, "/notifications?limit=ten", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNotificationMarkAllReadReportsCount(t *testing.T) {
	app := newNotificationApp(&stubNotificationService{markAllRows: 4})

	resp := doJSON(t, app, http.MethodPut, "/notifications/read-all", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, float64(4), data["updated"])
}

func TestNotificationMarkReadRejectsBadID(t *testing.T) {
	app := newNotificationApp(&stubNotificationService{})

	resp := doJSON(t, app, http.MethodPut, "/notifications/abc/read", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
