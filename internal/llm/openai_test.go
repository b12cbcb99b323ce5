package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type capturedRequest struct {
	Model          string  `json:"model"`
	Temperature    float32 `json:"temperature"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionServer(t *testing.T, status int, body string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIClient_Chat(t *testing.T) {
	var captured capturedRequest
	srv := completionServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"possibleConditions\":\"Common cold\"}"}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
	}`, &captured)

	client, err := NewOpenAIClient(Config{
		APIKey:      "sk-test",
		Model:       "gpt-4o-mini",
		BaseURL:     srv.URL + "/v1",
		Temperature: 0.2,
		Timeout:     5 * time.Second,
		JSONMode:    true,
	}, testLogger())
	require.NoError(t, err)

	reply, err := client.Chat(context.Background(), []Message{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "runny nose"},
		{Role: "tool", Content: "coerced"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"possibleConditions":"Common cold"}`, reply)

	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.InDelta(t, 0.2, captured.Temperature, 1e-6)
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
	require.Len(t, captured.Messages, 3)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[2].Role)
}

func TestOpenAIClient_Chat_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"api error", http.StatusTooManyRequests, `{"error": {"message": "Rate limit reached", "type": "requests"}}`, nil},
		{"no choices", http.StatusOK, `{"choices": []}`, ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := completionServer(t, tt.status, tt.body, nil)
			client, err := NewOpenAIClient(Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1"}, testLogger())
			require.NoError(t, err)

			_, err = client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewOpenAIClient_MissingKey(t *testing.T) {
	_, err := NewOpenAIClient(Config{}, testLogger())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestUnconfigured_Chat(t *testing.T) {
	_, err := Unconfigured{}.Chat(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
