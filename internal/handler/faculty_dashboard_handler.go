package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/service"
	"github.com/campushub/campus-api/internal/utils"
)

// FacultyDashboardHandler exposes the faculty statistics endpoint.
type FacultyDashboardHandler struct {
	service service.FacultyDashboardService
	logger  zerolog.Logger
}

// NewFacultyDashboardHandler creates a new handler instance.
func NewFacultyDashboardHandler(service service.FacultyDashboardService, logger zerolog.Logger) *FacultyDashboardHandler {
	return &FacultyDashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "faculty_dashboard_handler").Logger(),
	}
}

// Register attaches the stats endpoint.
func (h *FacultyDashboardHandler) Register(router fiber.Router) {
	router.Get("/stats", h.getStats)
}

func (h *FacultyDashboardHandler) getStats(c *fiber.Ctx) error {
	facultyID := userIDFromContext(c)
	if facultyID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	stats, err := h.service.GetStats(c.UserContext(), facultyID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("faculty_id", facultyID).Msg("failed to load faculty stats")
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "faculty stats retrieved", stats)
}
