package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/bryanwahyu/behavior-assessor/internal/domain/ai"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/schema"
)

func TestConvertFlatSchema(t *testing.T) {
	s, err := Convert(schema.MustFor(assessment.VariantFlat).Schema)
	require.NoError(t, err)

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, "session_id", s.PropertyOrdering[0])
	assert.Equal(t, s.Required, s.PropertyOrdering)

	score := s.Properties["prosody_score"]
	require.NotNil(t, score)
	assert.Equal(t, genai.TypeNumber, score.Type)
	require.NotNil(t, score.Minimum)
	require.NotNil(t, score.Maximum)
	assert.Equal(t, 0.0, *score.Minimum)
	assert.Equal(t, 1.0, *score.Maximum)

	assert.Equal(t, []string{"low", "moderate", "high", "urgent"}, s.Properties["evaluation_priority"].Enum)
}

func TestConvertNestedSchema(t *testing.T) {
	s, err := Convert(schema.MustFor(assessment.VariantNested).Schema)
	require.NoError(t, err)
	steps := s.Properties["recommendations"].Properties["suggested_next_steps"]
	assert.Equal(t, genai.TypeArray, steps.Type)
	assert.Equal(t, genai.TypeString, steps.Items.Type)

	duration := s.Properties["assessment_metadata"].Properties["video_duration_seconds"]
	assert.Equal(t, genai.TypeInteger, duration.Type)
	require.NotNil(t, duration.Minimum)
	assert.Equal(t, 0.0, *duration.Minimum)
}

func TestConvertRejectsUnknownTypes(t *testing.T) {
	_, err := Convert(map[string]any{"type": "null"})
	assert.ErrorIs(t, err, schema.ErrUnsupported)
}

func TestComplete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"ok\":true}"}]}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(context.Background(), "test-key", srv.URL, "gemini-test", schema.MustFor(assessment.VariantFlat))
	require.NoError(t, err)

	out, err := c.Complete(context.Background(), []ai.Message{
		{Role: ai.RoleSystem, Content: "persona"},
		{Role: ai.RoleUser, Content: "prompt"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
	assert.Contains(t, body, "systemInstruction")
	assert.Contains(t, body, "generationConfig")
}
