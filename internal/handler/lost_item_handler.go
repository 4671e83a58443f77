package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/service"
	"github.com/campushub/campus-api/internal/utils"
)

// LostItemHandler exposes the lost-and-found board.
type LostItemHandler struct {
	service service.LostItemService
	logger  zerolog.Logger
}

// NewLostItemHandler creates a new handler instance.
func NewLostItemHandler(service service.LostItemService, logger zerolog.Logger) *LostItemHandler {
	return &LostItemHandler{
		service: service,
		logger:  logger.With().Str("component", "lost_item_handler").Logger(),
	}
}

// Register attaches the shared lost-and-found routes.
func (h *LostItemHandler) Register(router fiber.Router) {
	router.Get("/lost-found", h.list)
	router.Post("/lost-found", h.create)
}

// RegisterAdmin attaches the status route.
func (h *LostItemHandler) RegisterAdmin(router fiber.Router) {
	router.Put("/lost-found/:id/status", h.updateStatus)
}

func (h *LostItemHandler) list(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext(), c.Query("status"))
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "items retrieved", items)
}

func (h *LostItemHandler) create(c *fiber.Ctx) error {
	actor := actorFromContext(c)
	if actor.ID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	var payload dto.LostItemCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	item, err := h.service.Create(c.UserContext(), actor, payload)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "item reported", item)
}

func (h *LostItemHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid item id")
	}

	var payload dto.StatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	item, err := h.service.UpdateStatus(c.UserContext(), id, payload)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "item updated", item)
}
