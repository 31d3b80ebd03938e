// Package llm talks to the hosted text generation service. Groq exposes an
// OpenAI compatible API, so the OpenAI client is pointed at its base URL.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

const (
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	DefaultModel       = "llama-3.3-70b-versatile"
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.7
	defaultTimeout     = 15 * time.Second
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// Client implements ports.TextGenerator. Every error it returns is a
// *domain.GenerationError.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	log         zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("llm: api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	log.Info().Str("model", cfg.Model).Str("base_url", cfg.BaseURL).Msg("generation client initialized")

	return &Client{
		api:         openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         log,
	}, nil
}

// Complete sends prompt as a single user message and returns the first
// choice. No retry is attempted.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classify(ctx, err)
	}

	if len(resp.Choices) == 0 {
		return "", &domain.GenerationError{Kind: domain.GenerationMalformed, Err: errors.New("response has no choices")}
	}

	c.log.Debug().
		Str("model", c.model).
		Str("finish_reason", string(resp.Choices[0].FinishReason)).
		Int("total_tokens", resp.Usage.TotalTokens).
		Dur("latency", time.Since(start)).
		Msg("generation completed")

	return resp.Choices[0].Message.Content, nil
}

func classify(ctx context.Context, err error) *domain.GenerationError {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	var netErr net.Error

	switch {
	case errors.As(err, &apiErr):
		return &domain.GenerationError{Kind: domain.GenerationRemote, Err: fmt.Errorf("status %d: %s", apiErr.HTTPStatusCode, apiErr.Message)}
	case errors.As(err, &reqErr):
		return &domain.GenerationError{Kind: domain.GenerationRemote, Err: err}
	case ctx.Err() != nil,
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.As(err, &netErr):
		return &domain.GenerationError{Kind: domain.GenerationTransport, Err: err}
	default:
		return &domain.GenerationError{Kind: domain.GenerationMalformed, Err: err}
	}
}
