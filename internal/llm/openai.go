package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrNotConfigured is returned when no API key was provided
	ErrNotConfigured = errors.New("language model is not configured")
	ErrEmptyResponse = errors.New("language model returned no choices")
)

// Message is a minimal chat message.
// Role must be one of: "system", "user", or "assistant".
type Message struct {
	Role    string
	Content string
}

// Client sends a conversation to a chat model and returns its reply
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// Config holds model settings
type Config struct {
	APIKey string
	Model  string
	// BaseURL points at an OpenAI-compatible endpoint; empty uses the public API
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
	// JSONMode asks the model for a single JSON object
	JSONMode bool
}

// OpenAIClient calls an OpenAI-compatible chat completion API
type OpenAIClient struct {
	client *openai.Client
	cfg    Config
	logger *slog.Logger
}

// NewOpenAIClient returns ErrNotConfigured when cfg.APIKey is empty
func NewOpenAIClient(cfg Config, logger *slog.Logger) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		logger: logger.With("component", "llm", "model", cfg.Model),
	}, nil
}

// Chat sends the message history to the chat completion API and returns
// the assistant's response
func (c *OpenAIClient) Chat(ctx context.Context, messages []Message) (string, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			// coerce anything unknown to user
			role = openai.ChatMessageRoleUser
		}
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	req := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    oaMsgs,
		Temperature: c.cfg.Temperature,
	}
	if c.cfg.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("chat completion",
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"duration", time.Since(start),
	)

	return resp.Choices[0].Message.Content, nil
}

// Unconfigured is a Client that fails every call with ErrNotConfigured.
// It lets the service start without a key.
type Unconfigured struct{}

func (Unconfigured) Chat(context.Context, []Message) (string, error) {
	return "", ErrNotConfigured
}
