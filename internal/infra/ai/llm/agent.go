// Package llm turns a raw model transport into a structured-output client:
// it validates every reply against the bound schema and re-prompts with the
// validation error until the reply fits or the retry budget is spent.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/bryanwahyu/behavior-assessor/internal/domain/ai"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/prompt"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/schema"
	"github.com/bryanwahyu/behavior-assessor/internal/logger"
)

// DefaultMaxRetries is the number of re-prompts after an invalid reply.
const DefaultMaxRetries = 3

type Agent struct {
	transport  ai.Transport
	doc        schema.Document
	system     string
	maxRetries int
	limiter    *rate.Limiter
}

type Option func(*Agent)

func WithMaxRetries(n int) Option {
	return func(a *Agent) {
		if n >= 0 {
			a.maxRetries = n
		}
	}
}

// WithLimiter paces every transport call, retries included.
func WithLimiter(l *rate.Limiter) Option {
	return func(a *Agent) { a.limiter = l }
}

func WithSystemPrompt(s string) Option {
	return func(a *Agent) { a.system = s }
}

func NewAgent(t ai.Transport, doc schema.Document, opts ...Option) *Agent {
	a := &Agent{
		transport:  t,
		doc:        doc,
		system:     prompt.GetSystemPrompt(),
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Variant is the schema variant this agent produces.
func (a *Agent) Variant() assessment.Variant { return a.doc.Variant }

// Run sends the prompt and returns the first reply that passes validation.
// Transport errors end the run immediately; invalid replies are retried.
func (a *Agent) Run(ctx context.Context, userPrompt string) (*assessment.Result, error) {
	msgs := []ai.Message{
		{Role: ai.RoleSystem, Content: a.system},
		{Role: ai.RoleUser, Content: userPrompt},
	}

	var lastErr error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if a.limiter != nil {
			if err := a.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		reply, err := a.transport.Complete(ctx, msgs)
		if err != nil {
			return nil, err
		}

		res, err := a.parse(reply)
		if err == nil {
			return res, nil
		}
		lastErr = err
		logger.Log.WithFields(logrus.Fields{
			"schema":  a.doc.Name,
			"attempt": attempt + 1,
			"error":   err,
		}).Warn("model output rejected")

		msgs = append(msgs,
			ai.Message{Role: ai.RoleAssistant, Content: reply},
			ai.Message{Role: ai.RoleUser, Content: prompt.Feedback(err)},
		)
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", ai.ErrOutputValidation, a.maxRetries+1, lastErr)
}

func (a *Agent) parse(reply string) (*assessment.Result, error) {
	raw := []byte(StripFences(reply))
	if err := a.doc.CheckRequired(raw); err != nil {
		return nil, err
	}
	res, err := assessment.Decode(a.doc.Variant, raw)
	if err != nil {
		return nil, err
	}
	if err := assessment.Validate(res.Record()); err != nil {
		return nil, err
	}
	res.Source = assessment.SourceModel
	return res, nil
}

// StripFences removes a surrounding markdown code fence, if any.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
