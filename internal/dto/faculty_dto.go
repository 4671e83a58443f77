package dto

import "time"

// FacultyStatsResponse aggregates complaint-handling statistics for the
// faculty dashboard, including chart-ready series.
type FacultyStatsResponse struct {
	TotalAssigned    int             `json:"totalAssigned"`
	Pending          int             `json:"pending"`
	Resolved         int             `json:"resolved"`
	Rejected         int             `json:"rejected"`
	TodaysComplaints int             `json:"todaysComplaints"`
	FacultyName      string          `json:"facultyName"`
	ChartData        []ChartPoint    `json:"chartData"`
	PieData          []PieSlice      `json:"pieData"`
	RecentActivity   []ActivityEntry `json:"recentActivity"`
}

// ChartPoint is one bar of the monthly complaint volume chart.
type ChartPoint struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// PieSlice is one segment of the status breakdown pie.
type PieSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// ActivityEntry is one row of the faculty recent-activity feed.
type ActivityEntry struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	StudentName string    `json:"studentName"`
	Timestamp   time.Time `json:"timestamp"`
}
