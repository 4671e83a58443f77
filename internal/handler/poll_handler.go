package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/service"
	"github.com/campushub/campus-api/internal/utils"
)

// PollHandler exposes poll listing, voting and lifecycle routes.
type PollHandler struct {
	service service.PollService
	logger  zerolog.Logger
}

// NewPollHandler creates a new handler instance.
func NewPollHandler(service service.PollService, logger zerolog.Logger) *PollHandler {
	return &PollHandler{
		service: service,
		logger:  logger.With().Str("component", "poll_handler").Logger(),
	}
}

// Register attaches the shared poll routes.
func (h *PollHandler) Register(router fiber.Router) {
	router.Get("/polls", h.list)
	router.Post("/polls/:id/vote", h.vote)
}

// RegisterAdmin attaches the lifecycle routes.
func (h *PollHandler) RegisterAdmin(router fiber.Router) {
	router.Post("/polls", h.create)
	router.Put("/polls/:id/close", h.close)
}

func (h *PollHandler) list(c *fiber.Ctx) error {
	polls, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list polls")
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "polls retrieved", polls)
}

func (h *PollHandler) vote(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid poll id")
	}

	var payload dto.VoteRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	poll, err := h.service.Vote(c.UserContext(), id, payload)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "vote recorded", poll)
}

func (h *PollHandler) create(c *fiber.Ctx) error {
	var payload dto.PollCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	poll, err := h.service.Create(c.UserContext(), payload, actorFromContext(c))
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "poll created", poll)
}

func (h *PollHandler) close(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid poll id")
	}

	poll, err := h.service.Close(c.UserContext(), id)
	if err != nil {
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "poll closed", poll)
}
