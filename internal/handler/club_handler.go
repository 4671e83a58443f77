package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/service"
	"github.com/campushub/campus-api/internal/utils"
)

// ClubHandler exposes the club directory.
type ClubHandler struct {
	service service.ClubService
	logger  zerolog.Logger
}

// NewClubHandler creates a new handler instance.
func NewClubHandler(service service.ClubService, logger zerolog.Logger) *ClubHandler {
	return &ClubHandler{
		service: service,
		logger:  logger.With().Str("component", "club_handler").Logger(),
	}
}

// Register attaches the shared listing route.
func (h *ClubHandler) Register(router fiber.Router) {
	router.Get("/clubs", h.list)
}

// RegisterAdmin attaches the lifecycle routes.
func (h *ClubHandler) RegisterAdmin(router fiber.Router) {
	router.Post("/clubs", h.create)
	router.Put("/clubs/:id/status", h.updateStatus)
}

func (h *ClubHandler) list(c *fiber.Ctx) error {
	clubs, err := h.service.List(c.UserContext(), c.Query("status"))
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "clubs retrieved", clubs)
}

func (h *ClubHandler) create(c *fiber.Ctx) error {
	var payload dto.ClubCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	club, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "club created", club)
}

func (h *ClubHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid club id")
	}

	var payload dto.StatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	club, err := h.service.UpdateStatus(c.UserContext(), id, payload)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "club updated", club)
}
