package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	assistantDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "campus",
		Subsystem: "assistant",
		Name:      "request_duration_seconds",
		Help:      "Duration of assistant requests",
	}, []string{"model"})

	assistantFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campus",
		Subsystem: "assistant",
		Name:      "request_failures_total",
		Help:      "Number of failed assistant requests",
	}, []string{"model"})
)

// OpenAIConfig defines configuration options for the OpenAI assistant.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	Logger      zerolog.Logger
}

// OpenAIAssistant implements Assistant against the OpenAI chat completion API.
type OpenAIAssistant struct {
	client *openai.Client
	cfg    OpenAIConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewOpenAIAssistant builds an assistant using the provided configuration.
func NewOpenAIAssistant(cfg OpenAIConfig) (*OpenAIAssistant, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 512
	}

	logger := cfg.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	return &OpenAIAssistant{
		client: openai.NewClientWithConfig(openai.DefaultConfig(cfg.APIKey)),
		cfg:    cfg,
		tracer: otel.Tracer("github.com/campushub/campus-api/pkg/ai/openai"),
		logger: logger,
	}, nil
}

// Respond relays one prompt to OpenAI and returns the reply text.
func (a *OpenAIAssistant) Respond(parent context.Context, prompt Prompt) (Reply, error) {
	ctx, span := a.tracer.Start(parent, "openai.respond", trace.WithAttributes(
		attribute.String("model", a.cfg.Model),
	))
	defer span.End()

	start := time.Now()
	request := openai.ChatCompletionRequest{
		Model:       a.cfg.Model,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: assistantSystemPrompt(prompt.Role)},
			{Role: openai.ChatMessageRoleUser, Content: prompt.Message},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, request)
	assistantDuration.WithLabelValues(a.cfg.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		assistantFailures.WithLabelValues(a.cfg.Model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Reply{}, fmt.Errorf("openai respond: %w", err)
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("no choices returned from openai")
		assistantFailures.WithLabelValues(a.cfg.Model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Reply{}, err
	}

	return Reply{
		Text: strings.TrimSpace(resp.Choices[0].Message.Content),
		Raw:  map[string]interface{}{"usage": resp.Usage},
	}, nil
}

func assistantSystemPrompt(role string) string {
	base := "You are the campus helpdesk assistant. Answer questions about complaints, notices, events, clubs, polls, " +
		"lost and found, placements and hostel services. Keep answers short and factual; when a question needs data " +
		"you do not have, direct the user to the relevant dashboard section."
	if role != "" {
		return base + " The user is a " + role + "."
	}
	return base
}
