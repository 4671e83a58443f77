package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/service"
	"github.com/campushub/campus-api/internal/utils"
)

// ComplaintHandler exposes complaint intake and the status workflow.
type ComplaintHandler struct {
	service service.ComplaintService
	logger  zerolog.Logger
}

// NewComplaintHandler creates a new handler instance.
func NewComplaintHandler(service service.ComplaintService, logger zerolog.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		service: service,
		logger:  logger.With().Str("component", "complaint_handler").Logger(),
	}
}

// RegisterStudent attaches the student-facing complaint routes.
func (h *ComplaintHandler) RegisterStudent(router fiber.Router) {
	router.Get("/complaints", h.listMine)
	router.Post("/complaints", h.create)
}

// RegisterFaculty attaches the faculty-facing status route.
func (h *ComplaintHandler) RegisterFaculty(router fiber.Router) {
	router.Put("/complaints/:id/status", h.updateStatus)
}

func (h *ComplaintHandler) listMine(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	complaints, err := h.service.ListMine(c.UserContext(), userID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("user_id", userID).Msg("failed to list complaints")
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "complaints retrieved", complaints)
}

func (h *ComplaintHandler) create(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	var payload dto.ComplaintCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	complaint, err := h.service.Create(c.UserContext(), userID, payload)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "complaint created", complaint)
}

func (h *ComplaintHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid complaint id")
	}

	var payload dto.ComplaintStatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	complaint, err := h.service.UpdateStatus(c.UserContext(), id, payload, actorFromContext(c))
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "complaint updated", complaint)
}
