package handler

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/middleware"
	"github.com/campushub/campus-api/internal/service"
	"github.com/campushub/campus-api/internal/utils"
)

// ChatbotHandler wires the assistant widget: a plain POST endpoint plus a
// websocket upgrade for clients that keep the widget open.
type ChatbotHandler struct {
	service service.ChatbotService
	logger  zerolog.Logger
}

// NewChatbotHandler creates a chatbot handler instance.
func NewChatbotHandler(service service.ChatbotService, logger zerolog.Logger) *ChatbotHandler {
	return &ChatbotHandler{
		service: service,
		logger:  logger.With().Str("component", "chatbot_handler").Logger(),
	}
}

// Register binds chatbot routes under the provided router group.
func (h *ChatbotHandler) Register(router fiber.Router) {
	router.Post("/message", h.message)

	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			ctx := c.UserContext()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = middleware.ContextWithCorrelation(ctx, middleware.GetCorrelationID(c))
			c.Locals("request_ctx", ctx)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", websocket.New(h.handleConnection))
}

func (h *ChatbotHandler) message(c *fiber.Ctx) error {
	actor := actorFromContext(c)
	if actor.ID == 0 {
		return utils.SendError(c, fiber.StatusUnauthorized, "user not authenticated")
	}

	var payload dto.ChatbotRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	reply, err := h.service.Reply(c.UserContext(), actor, payload)
	if err != nil {
		requestLogger(h.logger, c).Warn().Err(err).Uint("user_id", actor.ID).Msg("chatbot reply failed")
		status, message := statusFromServiceError(err)
		return utils.SendError(c, status, message)
	}

	return utils.SendSuccess(c, "reply generated", reply)
}

// handleConnection serves one widget session: every inbound text frame is a
// ChatbotRequest, every outbound frame a ChatbotResponse.
func (h *ChatbotHandler) handleConnection(conn *websocket.Conn) {
	defer func() { _ = conn.Close() }()

	actor := websocketActor(conn)
	if actor.ID == 0 {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "user id missing"))
		return
	}

	ctx, _ := conn.Locals("request_ctx").(context.Context)
	if ctx == nil {
		ctx = context.Background()
	}

	h.logger.Info().Uint("user_id", actor.ID).Msg("chatbot websocket connected")
	defer h.logger.Info().Uint("user_id", actor.ID).Msg("chatbot websocket disconnected")

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var payload dto.ChatbotRequest
		if err := json.Unmarshal(data, &payload); err != nil {
			_ = conn.WriteJSON(fiber.Map{"success": false, "message": "invalid message payload"})
			continue
		}

		reply, err := h.service.Reply(ctx, actor, payload)
		if err != nil {
			_, message := statusFromServiceError(err)
			_ = conn.WriteJSON(fiber.Map{"success": false, "message": message})
			continue
		}

		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

func websocketActor(conn *websocket.Conn) service.Actor {
	actor := service.Actor{}
	if v := conn.Locals("user_id"); v != nil {
		if id, ok := v.(uint); ok {
			actor.ID = id
		}
	}
	if v := conn.Locals("user_role"); v != nil {
		if role, ok := v.(string); ok {
			actor.Role = role
		}
	}
	return actor
}
