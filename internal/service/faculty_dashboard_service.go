package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/internal/observability"
	"github.com/campushub/campus-api/internal/repository"
)

const chartMonths = 6

// Fixed palette for the status breakdown pie, matched to the SPA theme.
var pieColors = map[string]string{
	models.ComplaintStatusPending:    "#f59e0b",
	models.ComplaintStatusInProgress: "#3b82f6",
	models.ComplaintStatusResolved:   "#10b981",
	models.ComplaintStatusRejected:   "#ef4444",
}

// FacultyDashboardService aggregates complaint-handling statistics for a
// faculty member.
type FacultyDashboardService interface {
	GetStats(ctx context.Context, facultyID uint) (dto.FacultyStatsResponse, error)
}

type facultyDashboardService struct {
	users      repository.UserRepository
	complaints repository.ComplaintRepository
	logger     zerolog.Logger
	now        func() time.Time
}

// NewFacultyDashboardService builds the faculty stats aggregator.
func NewFacultyDashboardService(users repository.UserRepository, complaints repository.ComplaintRepository, logger zerolog.Logger) FacultyDashboardService {
	return &facultyDashboardService{
		users:      users,
		complaints: complaints,
		logger:     logger.With().Str("component", "faculty_dashboard_service").Logger(),
		now:        time.Now,
	}
}

func (s *facultyDashboardService) GetStats(ctx context.Context, facultyID uint) (dto.FacultyStatsResponse, error) {
	start := time.Now()
	defer func() {
		observability.DashboardLatency().WithLabelValues("faculty").Observe(time.Since(start).Seconds())
	}()

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	chartCutoff := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(chartMonths - 1), 0)

	var (
		faculty      models.User
		statusCounts []repository.StatusCount
		todayCount   int64
		chartRows    []models.Complaint
		recent       []models.Complaint
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		faculty, err = s.users.FindByID(groupCtx, facultyID)
		return err
	})
	group.Go(func() error {
		var err error
		statusCounts, err = s.complaints.StatusCountsByFaculty(groupCtx, facultyID)
		return err
	})
	group.Go(func() error {
		var err error
		todayCount, err = s.complaints.CountAssignedSince(groupCtx, facultyID, midnight)
		return err
	})
	group.Go(func() error {
		var err error
		chartRows, err = s.complaints.ListAssignedSince(groupCtx, facultyID, chartCutoff)
		return err
	})
	group.Go(func() error {
		var err error
		recent, err = s.complaints.RecentAssigned(groupCtx, facultyID, 5)
		return err
	})

	if err := group.Wait(); err != nil {
		s.logger.Error().Err(err).Uint("faculty_id", facultyID).Msg("faculty stats sub-read failed")
		observability.DashboardRequests().WithLabelValues("faculty", "error").Inc()
		return dto.FacultyStatsResponse{}, fmt.Errorf("%w: %v", ErrAggregationFailed, err)
	}

	response := s.buildStats(faculty, statusCounts, todayCount, chartRows, recent, chartCutoff)
	observability.DashboardRequests().WithLabelValues("faculty", "ok").Inc()
	return response, nil
}

func (s *facultyDashboardService) buildStats(
	faculty models.User,
	statusCounts []repository.StatusCount,
	todayCount int64,
	chartRows []models.Complaint,
	recent []models.Complaint,
	chartCutoff time.Time,
) dto.FacultyStatsResponse {
	response := dto.FacultyStatsResponse{
		FacultyName:      faculty.Name,
		TodaysComplaints: int(todayCount),
	}

	buckets := map[string]int{}
	for _, row := range statusCounts {
		n := int(row.Count)
		response.TotalAssigned += n
		buckets[CanonicalComplaintStatus(row.Status)] += n
	}
	response.Pending = buckets[models.ComplaintStatusPending]
	response.Resolved = buckets[models.ComplaintStatusResolved]
	response.Rejected = buckets[models.ComplaintStatusRejected]

	response.ChartData = buildMonthlyChart(chartRows, chartCutoff)

	pie := make([]dto.PieSlice, 0, len(pieColors))
	for _, status := range []string{
		models.ComplaintStatusPending,
		models.ComplaintStatusInProgress,
		models.ComplaintStatusResolved,
		models.ComplaintStatusRejected,
	} {
		pie = append(pie, dto.PieSlice{Name: status, Value: buckets[status], Color: pieColors[status]})
	}
	response.PieData = pie

	activity := make([]dto.ActivityEntry, 0, len(recent))
	for _, complaint := range recent {
		activity = append(activity, dto.ActivityEntry{
			ID:          complaint.ID,
			Title:       complaint.Subject,
			Status:      complaint.Status,
			StudentName: complaint.User.Name,
			Timestamp:   complaint.CreatedAt,
		})
	}
	response.RecentActivity = activity

	return response
}

// buildMonthlyChart buckets complaints into one bar per month, oldest first,
// emitting every month in the window even when its count is zero.
func buildMonthlyChart(rows []models.Complaint, cutoff time.Time) []dto.ChartPoint {
	counts := map[string]int{}
	for _, row := range rows {
		counts[row.CreatedAt.Format("Jan")]++
	}

	chart := make([]dto.ChartPoint, 0, chartMonths)
	for i := 0; i < chartMonths; i++ {
		month := cutoff.AddDate(0, i, 0)
		name := month.Format("Jan")
		chart = append(chart, dto.ChartPoint{Name: name, Total: counts[name]})
	}
	return chart
}
