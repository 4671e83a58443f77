package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/observability"
	"github.com/campushub/campus-api/internal/repository"
)

// Dashboard feed page sizes. Stats counters are computed over the full scoped
// set and are independent of these.
const (
	dashboardRecentComplaints = 5
	dashboardNoticePageSize   = 5
	dashboardNotifPageSize    = 10
)

// StudentDashboardService produces the composite student dashboard document.
type StudentDashboardService interface {
	GetDashboard(ctx context.Context, userID uint) (dto.StudentDashboardResponse, error)
}

type studentDashboardService struct {
	users         repository.UserRepository
	complaints    repository.ComplaintRepository
	notices       repository.NoticeRepository
	notifications repository.NotificationRepository
	logger        zerolog.Logger
}

// NewStudentDashboardService builds the dashboard aggregator.
func NewStudentDashboardService(
	users repository.UserRepository,
	complaints repository.ComplaintRepository,
	notices repository.NoticeRepository,
	notifications repository.NotificationRepository,
	logger zerolog.Logger,
) StudentDashboardService {
	return &studentDashboardService{
		users:         users,
		complaints:    complaints,
		notices:       notices,
		notifications: notifications,
		logger:        logger.With().Str("component", "student_dashboard_service").Logger(),
	}
}

// GetDashboard fans out the five independent reads concurrently and assembles
// the response only after all of them complete. Any sub-read failure aborts the
// whole aggregation; a partial document is never returned. The call is a pure
// read composition: it mutates no row and every request re-reads current state,
// so a notification marked read or a new notice shows up on the very next call.
func (s *studentDashboardService) GetDashboard(ctx context.Context, userID uint) (dto.StudentDashboardResponse, error) {
	start := time.Now()
	defer func() {
		observability.DashboardLatency().WithLabelValues("student").Observe(time.Since(start).Seconds())
	}()

	var (
		user          models.User
		statusCounts  []repository.StatusCount
		recent        []models.Complaint
		notices       []models.Notice
		notifications []models.Notification
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		user, err = s.users.FindByID(groupCtx, userID)
		return err
	})
	group.Go(func() error {
		var err error
		statusCounts, err = s.complaints.StatusCountsByUser(groupCtx, userID)
		return err
	})
	group.Go(func() error {
		var err error
		recent, err = s.complaints.ListByUser(groupCtx, userID, dashboardRecentComplaints)
		return err
	})
	group.Go(func() error {
		var err error
		notices, err = s.notices.ListVisible(groupCtx, models.NoticeAudienceStudent, dashboardNoticePageSize)
		return err
	})
	group.Go(func() error {
		var err error
		notifications, err = s.notifications.ListByUser(groupCtx, userID, dashboardNotifPageSize, 0)
		return err
	})

	if err := group.Wait(); err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("dashboard sub-read failed")
		observability.DashboardRequests().WithLabelValues("student", "error").Inc()
		return dto.StudentDashboardResponse{}, fmt.Errorf("%w: %v", ErrAggregationFailed, err)
	}

	notificationFeed := dto.NewNotificationResponseSlice(notifications)
	response := dto.StudentDashboardResponse{
		User:             dto.NewUserProfile(user),
		Stats:            BuildComplaintStats(statusCounts),
		RecentComplaints: dto.NewComplaintSummarySlice(recent),
		Notices:          dto.NewNoticeResponseSlice(notices),
		Notifications:    notificationFeed,
		// The badge count is scoped to the slice just returned so the list and
		// the badge stay self-consistent, even though older unread entries
		// beyond the page are not counted.
		UnreadCount: dto.CountUnread(notificationFeed),
	}

	observability.DashboardRequests().WithLabelValues("student", "ok").Inc()
	return response, nil
}

// BuildComplaintStats folds a grouped status aggregation into the fixed
// counters. A status outside the canonical enum contributes to total only;
// every row lands in exactly one bucket or in none, never two.
func BuildComplaintStats(counts []repository.StatusCount) dto.ComplaintStats {
	stats := dto.ComplaintStats{}
	for _, row := range counts {
		n := int(row.Count)
		stats.Total += n
		switch CanonicalComplaintStatus(row.Status) {
		case models.ComplaintStatusPending:
			stats.Pending += n
		case models.ComplaintStatusInProgress:
			stats.InProgress += n
		case models.ComplaintStatusResolved:
			stats.Resolved += n
		}
	}
	return stats
}

// CanonicalComplaintStatus folds legacy spellings into the canonical enum.
// "In-Progress" rows predate the current clients and count as "In Progress".
func CanonicalComplaintStatus(status string) string {
	trimmed := strings.TrimSpace(status)
	if strings.EqualFold(trimmed, "in-progress") || strings.EqualFold(trimmed, "in progress") {
		return models.ComplaintStatusInProgress
	}
	return trimmed
}
