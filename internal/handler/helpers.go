package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/middleware"
	"github.com/campushub/campus-api/internal/service"
)

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func parseIDParam(c *fiber.Ctx, key string) (uint, error) {
	value := strings.TrimSpace(c.Params(key))
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}

func userIDFromContext(c *fiber.Ctx) uint {
	if v := c.Locals("user_id"); v != nil {
		switch id := v.(type) {
		case uint:
			return id
		case int:
			if id < 0 {
				return 0
			}
			return uint(id)
		case string:
			parsed, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
			if err == nil {
				return uint(parsed)
			}
		}
	}
	return 0
}

func userRoleFromContext(c *fiber.Ctx) string {
	if v := c.Locals("user_role"); v != nil {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

func actorFromContext(c *fiber.Ctx) service.Actor {
	return service.Actor{
		ID:   userIDFromContext(c),
		Role: userRoleFromContext(c),
	}
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

// statusFromServiceError maps service sentinels onto HTTP status codes.
// Unknown errors come back as 500 with a generic message so internals never
// leak into responses.
func statusFromServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound, "record not found"
	case errors.Is(err, service.ErrInvalidTransition):
		return fiber.StatusConflict, err.Error()
	case errors.Is(err, service.ErrPollClosed):
		return fiber.StatusConflict, "poll is closed"
	case errors.Is(err, service.ErrAssistantUnavailable):
		return fiber.StatusBadGateway, "assistant unavailable"
	case errors.Is(err, service.ErrAggregationFailed):
		return fiber.StatusInternalServerError, "failed to load dashboard"
	default:
		return fiber.StatusInternalServerError, "internal server error"
	}
}
