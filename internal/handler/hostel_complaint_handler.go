package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/service"
	"github.com/campushub/campus-api/internal/utils"
)

// HostelComplaintHandler exposes hostel maintenance complaints.
type HostelComplaintHandler struct {
	service service.HostelComplaintService
	logger  zerolog.Logger
}

// NewHostelComplaintHandler creates a new handler instance.
func NewHostelComplaintHandler(service service.HostelComplaintService, logger zerolog.Logger) *HostelComplaintHandler {
	return &HostelComplaintHandler{
		service: service,
		logger:  logger.With().Str("component", "hostel_complaint_handler").Logger(),
	}
}

// RegisterStudent attaches the student-facing routes.
func (h *HostelComplaintHandler) RegisterStudent(router fiber.Router) {
	router.Get("/hostel/complaints", h.listMine)
	router.Post("/hostel/complaints", h.create)
}

// RegisterAdmin attaches the admin routes.
func (h *HostelComplaintHandler) RegisterAdmin(router fiber.Router) {
	router.Get("/hostel/complaints", h.list)
	router.Put("/hostel/complaints/:id/status", h.updateStatus)
}

func (h *HostelComplaintHandler) listMine(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	complaints, err := h.service.ListMine(c.UserContext(), userID)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "hostel complaints retrieved", complaints)
}

func (h *HostelComplaintHandler) list(c *fiber.Ctx) error {
	complaints, err := h.service.List(c.UserContext(), c.Query("status"))
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "hostel complaints retrieved", complaints)
}

func (h *HostelComplaintHandler) create(c *fiber.Ctx) error {
	actor := actorFromContext(c)
	if actor.ID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	var payload dto.HostelComplaintCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	complaint, err := h.service.Create(c.UserContext(), actor, payload)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "hostel complaint created", complaint)
}

func (h *HostelComplaintHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid complaint id")
	}

	var payload dto.StatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	complaint, err := h.service.UpdateStatus(c.UserContext(), id, payload)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "hostel complaint updated", complaint)
}
