package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/service"
	"github.com/campushub/campus-api/internal/utils"
)

// EventHandler exposes event registration and the approval workflow.
type EventHandler struct {
	service service.EventService
	logger  zerolog.Logger
}

// NewEventHandler creates a new handler instance.
func NewEventHandler(service service.EventService, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger.With().Str("component", "event_handler").Logger(),
	}
}

// Register attaches the event read routes.
func (h *EventHandler) Register(router fiber.Router) {
	router.Get("/events", h.list)
	router.Get("/events/:id", h.get)
}

// RegisterFaculty attaches the approval route.
func (h *EventHandler) RegisterFaculty(router fiber.Router) {
	router.Put("/events/:id/status", h.updateStatus)
}

// RegisterAdmin attaches the registration route.
func (h *EventHandler) RegisterAdmin(router fiber.Router) {
	router.Post("/events", h.create)
}

func (h *EventHandler) list(c *fiber.Ctx) error {
	events, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list events")
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "events retrieved", events)
}

func (h *EventHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid event id")
	}

	event, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "event retrieved", event)
}

func (h *EventHandler) create(c *fiber.Ctx) error {
	var payload dto.EventCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	event, err := h.service.Create(c.UserContext(), payload, actorFromContext(c))
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "event registered", event)
}

func (h *EventHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid event id")
	}

	var payload dto.EventStatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	event, err := h.service.UpdateStatus(c.UserContext(), id, payload, actorFromContext(c))
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "event status updated", event)
}
