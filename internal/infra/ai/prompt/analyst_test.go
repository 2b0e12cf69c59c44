package prompt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func TestGetUserPromptEmbedsPayloads(t *testing.T) {
	conv := map[string]any{"session_id": "s1", "transcript": "hello there"}
	behav := map[string]any{"prosody": map[string]any{"calmness": 0.4}}

	p := GetUserPrompt(conv, behav, fixedNow)

	assert.Contains(t, p, "Session ID: s1")
	assert.Contains(t, p, "Analysis Timestamp: 2025-03-14T09:30:00Z")
	assert.Contains(t, p, `"transcript": "hello there"`)
	assert.Contains(t, p, `"calmness": 0.4`)
	assert.Contains(t, p, "between 0.0 and 1.0")
	assert.Contains(t, p, "Do not infer or assume")
	for _, dim := range []string{"SOCIAL COMMUNICATION", "BEHAVIORAL PATTERNS", "SPEECH AND LANGUAGE", "CONFIDENCE AND UNCERTAINTY", "RECOMMENDATIONS"} {
		assert.Contains(t, p, dim)
	}
}

func TestGetUserPromptDefaults(t *testing.T) {
	p := GetUserPrompt(nil, nil, fixedNow)
	assert.Contains(t, p, "Session ID: unknown")
	assert.Equal(t, 2, strings.Count(p, "{}"))
}

func TestGetUserPromptIsPure(t *testing.T) {
	conv := map[string]any{"session_id": "s2"}
	assert.Equal(t, GetUserPrompt(conv, nil, fixedNow), GetUserPrompt(conv, nil, fixedNow))
}

func TestSessionID(t *testing.T) {
	assert.Equal(t, "unknown", SessionID(map[string]any{}))
	assert.Equal(t, "unknown", SessionID(map[string]any{"session_id": nil}))
	assert.Equal(t, "42", SessionID(map[string]any{"session_id": 42}))
}

func TestSystemPromptFocusAreas(t *testing.T) {
	s := GetSystemPrompt()
	for _, area := range []string{"Social communication", "repetitive", "Sensory", "Developmental", "Masking", "Cultural"} {
		assert.Contains(t, s, area)
	}
}

func TestWithSchemaAndFeedback(t *testing.T) {
	s := WithSchema("persona", `{"type":"object"}`)
	assert.True(t, strings.HasPrefix(s, "persona"))
	assert.Contains(t, s, `{"type":"object"}`)

	assert.Contains(t, Feedback(errors.New("missing field: x")), "missing field: x")
}
