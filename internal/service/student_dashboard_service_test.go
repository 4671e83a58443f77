package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

type stubUserRepo struct {
	repository.UserRepository
	user models.User
	err  error
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (models.User, error) {
	return s.user, s.err
}

type stubComplaintRepo struct {
	repository.ComplaintRepository
	statusCounts  []repository.StatusCount
	recent        []models.Complaint
	listErr       error
	facultyCounts []repository.StatusCount
	todayCount    int64
	chartRows     []models.Complaint
	assigned      []models.Complaint
}

func (s *stubComplaintRepo) StatusCountsByUser(ctx context.Context, userID uint) ([]repository.StatusCount, error) {
	return s.statusCounts, nil
}

func (s *stubComplaintRepo) ListByUser(ctx context.Context, userID uint, limit int) ([]models.Complaint, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.recent, nil
}

func (s *stubComplaintRepo) StatusCountsByFaculty(ctx context.Context, facultyID uint) ([]repository.StatusCount, error) {
	return s.facultyCounts, nil
}

func (s *stubComplaintRepo) CountAssignedSince(ctx context.Context, facultyID uint, since time.Time) (int64, error) {
	return s.todayCount, nil
}

func (s *stubComplaintRepo) ListAssignedSince(ctx context.Context, facultyID uint, since time.Time) ([]models.Complaint, error) {
	return s.chartRows, nil
}

func (s *stubComplaintRepo) RecentAssigned(ctx context.Context, facultyID uint, limit int) ([]models.Complaint, error) {
	return s.assigned, nil
}

type stubNoticeRepo struct {
	repository.NoticeRepository
	visible      []models.Notice
	all          []models.Notice
	created      *models.Notice
	listAllCalls int
}

func (s *stubNoticeRepo) ListVisible(ctx context.Context, audience string, limit int) ([]models.Notice, error) {
	return s.visible, nil
}

func (s *stubNoticeRepo) ListAll(ctx context.Context) ([]models.Notice, error) {
	s.listAllCalls++
	return s.all, nil
}

func (s *stubNoticeRepo) Create(ctx context.Context, notice *models.Notice) error {
	s.created = notice
	return nil
}

type stubNotificationRepo struct {
	repository.NotificationRepository
	page        []models.Notification
	created     *models.Notification
	markReadErr error
}

func (s *stubNotificationRepo) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	return s.page, nil
}

func TestStudentDashboardComposesAllSections(t *testing.T) {
	users := &stubUserRepo{user: models.User{ID: 7, Name: "Meera Iyer", Role: models.RoleStudent}}
	complaints := &stubComplaintRepo{
		statusCounts: []repository.StatusCount{
			{Status: models.ComplaintStatusPending, Count: 2},
			{Status: "In-Progress", Count: 1},
			{Status: "Escalated", Count: 1},
		},
		recent: []models.Complaint{{ID: 1, Subject: "wifi"}, {ID: 2, Subject: "mess"}},
	}
	notices := &stubNoticeRepo{visible: []models.Notice{{ID: 3, Title: "holiday"}}}
	notifications := &stubNotificationRepo{page: []models.Notification{
		{ID: 10, UserID: 7, Message: "a"},
		{ID: 11, UserID: 7, Message: "b", Read: true},
		{ID: 12, UserID: 7, Message: "c"},
	}}

	svc := NewStudentDashboardService(users, complaints, notices, notifications, testLogger())

	dashboard, err := svc.GetDashboard(context.Background(), 7)
	require.NoError(t, err)

	require.Equal(t, "Meera Iyer", dashboard.User.Name)
	require.Equal(t, 4, dashboard.Stats.Total)
	require.Equal(t, 2, dashboard.Stats.Pending)
	require.Equal(t, 1, dashboard.Stats.InProgress, "legacy In-Progress spelling folds into In Progress")
	require.Zero(t, dashboard.Stats.Resolved)
	require.Len(t, dashboard.RecentComplaints, 2)
	require.Len(t, dashboard.Notices, 1)
	require.Len(t, dashboard.Notifications, 3)
	require.Equal(t, 2, dashboard.UnreadCount, "badge counts unread entries in the returned page")
}

func TestStudentDashboardReReadsStateOnEveryRequest(t *testing.T) {
	users := &stubUserRepo{user: models.User{ID: 8, Name: "Meera Iyer", Role: models.RoleStudent}}
	notifications := &stubNotificationRepo{page: []models.Notification{
		{ID: 20, UserID: 8, Message: "hostel inspection"},
	}}

	svc := NewStudentDashboardService(users, &stubComplaintRepo{}, &stubNoticeRepo{}, notifications, testLogger())

	dashboard, err := svc.GetDashboard(context.Background(), 8)
	require.NoError(t, err)
	require.Equal(t, 1, dashboard.UnreadCount)

	// Mark the notification read in the backing store; the next call must see
	// it immediately, never a retained copy of the earlier document.
	notifications.page[0].Read = true

	dashboard, err = svc.GetDashboard(context.Background(), 8)
	require.NoError(t, err)
	require.Zero(t, dashboard.UnreadCount)
}

func TestStudentDashboardFailsClosedWhenSubReadFails(t *testing.T) {
	users := &stubUserRepo{user: models.User{ID: 9, Name: "X"}}
	complaints := &stubComplaintRepo{listErr: context.DeadlineExceeded}

	svc := NewStudentDashboardService(users, complaints, &stubNoticeRepo{}, &stubNotificationRepo{}, testLogger())

	_, err := svc.GetDashboard(context.Background(), 9)
	require.ErrorIs(t, err, ErrAggregationFailed, "a partial dashboard must never be returned")
}

func TestBuildComplaintStatsUnknownStatusCountsTowardTotalOnly(t *testing.T) {
	stats := BuildComplaintStats([]repository.StatusCount{
		{Status: models.ComplaintStatusPending, Count: 3},
		{Status: models.ComplaintStatusResolved, Count: 2},
		{Status: "Escalated", Count: 4},
	})

	require.Equal(t, 9, stats.Total)
	require.Equal(t, 3, stats.Pending)
	require.Equal(t, 2, stats.Resolved)
	require.Zero(t, stats.InProgress)
	require.Equal(t, 4, stats.Total-stats.Pending-stats.InProgress-stats.Resolved)
}

func TestCanonicalComplaintStatusFoldsLegacySpelling(t *testing.T) {
	require.Equal(t, models.ComplaintStatusInProgress, CanonicalComplaintStatus("In-Progress"))
	require.Equal(t, models.ComplaintStatusInProgress, CanonicalComplaintStatus("in progress"))
	require.Equal(t, models.ComplaintStatusPending, CanonicalComplaintStatus(" Pending "))
	require.Equal(t, "Escalated", CanonicalComplaintStatus("Escalated"))
}
