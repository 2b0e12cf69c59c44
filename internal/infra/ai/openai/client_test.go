package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/behavior-assessor/internal/domain/ai"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/schema"
)

func newTestClient(t *testing.T, h http.HandlerFunc, model string) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return NewClientWithConfig(cfg, model, schema.MustFor(assessment.VariantNested))
}

func TestCompleteSendsStrictSchema(t *testing.T) {
	var got openai.ChatCompletionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}, "")

	out, err := c.Complete(context.Background(), []ai.Message{
		{Role: ai.RoleSystem, Content: "persona"},
		{Role: ai.RoleUser, Content: "prompt"},
		{Role: ai.RoleAssistant, Content: "bad"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)

	assert.Equal(t, "gpt-4o", got.Model)
	assert.Equal(t, defaultMaxTokens, got.MaxTokens)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONSchema, got.ResponseFormat.Type)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, got.Messages[2].Role)
}

func TestCompleteReasoningModelUsesCompletionTokens(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{}"}}]}`))
	}, "o3-mini")

	_, err := c.Complete(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "x"}})
	require.NoError(t, err)
	assert.Contains(t, body, "max_completion_tokens")
	assert.NotContains(t, body, "max_tokens")
}

func TestCompleteMapsQuotaErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exhausted","type":"insufficient_quota"}}`))
	}, "")

	_, err := c.Complete(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "x"}})
	assert.ErrorIs(t, err, ai.ErrQuotaExceeded)
}

func TestCompleteEmptyChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}, "")

	_, err := c.Complete(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "x"}})
	assert.ErrorIs(t, err, ai.ErrEmptyResponse)
}
