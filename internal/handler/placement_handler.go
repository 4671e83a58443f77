package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/service"
	"github.com/campushub/campus-api/internal/utils"
)

// PlacementHandler exposes placement drives.
type PlacementHandler struct {
	service service.PlacementService
	logger  zerolog.Logger
}

// NewPlacementHandler creates a new handler instance.
func NewPlacementHandler(service service.PlacementService, logger zerolog.Logger) *PlacementHandler {
	return &PlacementHandler{
		service: service,
		logger:  logger.With().Str("component", "placement_handler").Logger(),
	}
}

// Register attaches the shared listing route.
func (h *PlacementHandler) Register(router fiber.Router) {
	router.Get("/placements", h.list)
}

// RegisterAdmin attaches the lifecycle routes.
func (h *PlacementHandler) RegisterAdmin(router fiber.Router) {
	router.Post("/placements", h.create)
	router.Put("/placements/:id/status", h.updateStatus)
}

func (h *PlacementHandler) list(c *fiber.Ctx) error {
	drives, err := h.service.List(c.UserContext(), c.Query("status"))
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "placements retrieved", drives)
}

func (h *PlacementHandler) create(c *fiber.Ctx) error {
	var payload dto.PlacementCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	drive, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "placement created", drive)
}

func (h *PlacementHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid placement id")
	}

	var payload dto.StatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	drive, err := h.service.UpdateStatus(c.UserContext(), id, payload)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "placement updated", drive)
}
