package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/models"
	"github.com/campushub/campus-api/pkg/ai"
)

type stubAssistant struct {
	lastPrompt ai.Prompt
	reply      ai.Reply
	err        error
}

func (s *stubAssistant) Respond(ctx context.Context, prompt ai.Prompt) (ai.Reply, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return ai.Reply{}, s.err
	}
	return s.reply, nil
}

func TestChatbotReplyRelaysSanitizedPrompt(t *testing.T) {
	assistant := &stubAssistant{reply: ai.Reply{Text: "The library closes at 10pm."}}
	svc := NewChatbotService(assistant, validator.New(validator.WithRequiredStructEnabled()), testLogger()).(*chatbotService)
	fixed := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	actor := Actor{ID: 42, Role: models.RoleStudent}
	response, err := svc.Reply(context.Background(), actor, dto.ChatbotRequest{
		Message: "  <b>When</b> does the library close?  ",
	})
	require.NoError(t, err)

	require.Equal(t, "When does the library close?", assistant.lastPrompt.Message)
	require.Equal(t, "42", assistant.lastPrompt.UserID)
	require.Equal(t, models.RoleStudent, assistant.lastPrompt.Role)
	require.Equal(t, "The library closes at 10pm.", response.Reply)
	require.Equal(t, fixed, response.CreatedAt)
}

func TestChatbotReplyRejectsMessageEmptyAfterSanitize(t *testing.T) {
	assistant := &stubAssistant{}
	svc := NewChatbotService(assistant, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	_, err := svc.Reply(context.Background(), Actor{ID: 43}, dto.ChatbotRequest{Message: "   "})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Empty(t, assistant.lastPrompt.Message, "the assistant must not be called")
}

func TestChatbotReplyMapsAssistantFailure(t *testing.T) {
	assistant := &stubAssistant{err: errors.New("upstream timeout")}
	svc := NewChatbotService(assistant, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	_, err := svc.Reply(context.Background(), Actor{ID: 44}, dto.ChatbotRequest{Message: "hello"})
	require.ErrorIs(t, err, ErrAssistantUnavailable)
}
