package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/pkg/ai"
)

// ChatbotService relays widget prompts to the configured assistant backend.
// The API treats the assistant as opaque: prompt in, reply out.
type ChatbotService interface {
	Reply(ctx context.Context, actor Actor, payload dto.ChatbotRequest) (dto.ChatbotResponse, error)
}

type chatbotService struct {
	assistant ai.Assistant
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	now       func() time.Time
}

// NewChatbotService constructs the chatbot relay.
func NewChatbotService(assistant ai.Assistant, validate *validator.Validate, logger zerolog.Logger) ChatbotService {
	return &chatbotService{
		assistant: assistant,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "chatbot_service").Logger(),
		now:       time.Now,
	}
}

func (s *chatbotService) Reply(ctx context.Context, actor Actor, payload dto.ChatbotRequest) (dto.ChatbotResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ChatbotResponse{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	message := strings.TrimSpace(s.sanitizer.Sanitize(payload.Message))
	if message == "" {
		return dto.ChatbotResponse{}, fmt.Errorf("%w: message empty after sanitization", ErrValidationFailed)
	}

	reply, err := s.assistant.Respond(ctx, ai.Prompt{
		UserID:  strconv.FormatUint(uint64(actor.ID), 10),
		Role:    actor.Role,
		Message: message,
	})
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", actor.ID).Msg("assistant request failed")
		return dto.ChatbotResponse{}, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	return dto.ChatbotResponse{Reply: reply.Text, CreatedAt: s.now()}, nil
}
