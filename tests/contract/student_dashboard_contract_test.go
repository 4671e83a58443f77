package contract_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/handler"
)

type stubDashboardService struct {
	response dto.StudentDashboardResponse
}

func (s stubDashboardService) GetDashboard(context.Context, uint) (dto.StudentDashboardResponse, error) {
	return s.response, nil
}

// The SPA binds to the top-level keys of the dashboard document directly, so
// its shape is contract-binding and pinned by schema.
func TestStudentDashboardContract(t *testing.T) {
	schemaPath, err := filepath.Abs(filepath.Join("..", "contracts", "student_dashboard.schema.json"))
	require.NoError(t, err)

	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile("file://" + schemaPath)
	require.NoError(t, err)

	now := time.Now().UTC()
	dashboard := dto.StudentDashboardResponse{
		User: dto.UserProfile{
			ID:    7,
			Name:  "Meera Iyer",
			Email: "meera.iyer@example.edu",
			Role:  "student",
		},
		Stats: dto.ComplaintStats{Total: 3, Pending: 1, InProgress: 1, Resolved: 1},
		RecentComplaints: []dto.ComplaintSummary{
			{ID: 1, Category: "Hostel", Subject: "wifi down", Status: "Pending", Date: now},
		},
		Notices: []dto.NoticeResponse{
			{ID: 2, Title: "Holiday", Description: "Campus closed Friday", Category: "General", Audience: "All", IsActive: true, CreatedAt: now},
		},
		Notifications: []dto.NotificationResponse{
			{ID: 3, UserID: 7, Title: "Update", Message: "complaint resolved", Type: "complaint", Read: false, CreatedAt: now},
		},
		UnreadCount: 1,
	}

	dashboardHandler := handler.NewStudentDashboardHandler(stubDashboardService{response: dashboard}, zerolog.Nop())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(7))
		c.Locals("user_role", "student")
		return c.Next()
	})
	dashboardHandler.Register(app.Group("/api/v1/student"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/student/dashboard", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NoError(t, schema.Validate(payload))
}
