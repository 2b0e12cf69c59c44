package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// GetSystemPrompt is the assessor persona given to every backend.
func GetSystemPrompt() string {
	return `You are a clinical assessment specialist for the autism spectrum with working knowledge of DSM-5 criteria, developmental psychology and behavioral analysis. You review multi-modal session data (conversation, facial expression, vocal prosody) and produce a structured assessment.

Focus areas:
- Social communication patterns and deficits.
- Restricted or repetitive patterns of behavior.
- Sensory processing differences.
- Developmental context appropriate to the estimated age.
- Masking and compensation strategies.
- Cultural and contextual factors.

Always report confidence, state the limits of a single-session assessment, and recommend professional follow-up where the data warrants it.`
}

// GetUserPrompt renders one assessment request. Nil payloads are treated as
// empty and a missing session_id becomes "unknown". now is passed in so the
// output depends only on the arguments.
func GetUserPrompt(conversation, behavioral map[string]any, now time.Time) string {
	if conversation == nil {
		conversation = map[string]any{}
	}
	if behavioral == nil {
		behavioral = map[string]any{}
	}

	var b strings.Builder
	b.WriteString("AUTISM SPECTRUM ASSESSMENT REQUEST\n\n")
	fmt.Fprintf(&b, "Session ID: %s\n", SessionID(conversation))
	fmt.Fprintf(&b, "Analysis Timestamp: %s\n\n", now.UTC().Format(time.RFC3339))

	b.WriteString("CONVERSATION DATA:\n")
	b.WriteString(render(conversation))
	b.WriteString("\n\nMULTI-MODAL BEHAVIORAL DATA:\n")
	b.WriteString(render(behavioral))
	b.WriteString("\n\n")
	b.WriteString(requirements)
	return b.String()
}

// SessionID reads session_id from a conversation payload.
func SessionID(conversation map[string]any) string {
	if v, ok := conversation["session_id"]; ok && v != nil {
		if s := fmt.Sprint(v); s != "" {
			return s
		}
	}
	return "unknown"
}

func render(v map[string]any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

const requirements = `ASSESSMENT REQUIREMENTS:
Assess the session against DSM-5 criteria across these dimensions:

1. SOCIAL COMMUNICATION: turn-taking and conversational flow, eye contact indicators from facial data, pragmatic language and contextual appropriateness, social reciprocity.
2. BEHAVIORAL PATTERNS: repetitive behaviors, sensory processing indicators from emotional responses, attention and self-regulation.
3. SPEECH AND LANGUAGE: prosody, vocal characteristics and modulation, language patterns and pragmatic usage.
4. CONFIDENCE AND UNCERTAINTY: overall confidence given data quality, conflicting indicators, data sufficiency.
5. RECOMMENDATIONS: evaluation priority (low, moderate, high or urgent), next steps, areas to monitor.

Rules:
- Use only the data above. Do not infer or assume anything that is not present in the conversation or behavioral data.
- Every score is a decimal between 0.0 and 1.0 inclusive: 0.0 means no evidence or the lowest value, 0.5 a moderate or average value, 1.0 strong evidence or the highest value.
- Confidence scores express certainty in your own judgement (0.0 very uncertain, 1.0 very certain).
- Likelihood scores express the probability of the condition (0.0 very unlikely, 1.0 very likely).`

// WithSchema appends a schema to the system prompt for backends without
// native structured output.
func WithSchema(system, schemaJSON string) string {
	return system + "\n\nRespond with one JSON object only, no markdown and no commentary, that validates against this JSON Schema:\n" + schemaJSON
}

// Feedback is sent back to the model after a reply fails validation.
func Feedback(err error) string {
	return fmt.Sprintf("The previous reply was rejected: %v\nReturn the complete JSON object again with every required field present and every score between 0.0 and 1.0.", err)
}
