package ai

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/behavior-assessor/internal/application"
	"github.com/bryanwahyu/behavior-assessor/internal/application/fallback"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/ai"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/prompt"
	"github.com/bryanwahyu/behavior-assessor/internal/logger"
)

type Options struct {
	// Variant is the wire variant returned to callers.
	Variant assessment.Variant
	// Timeout bounds the model call. Zero means no deadline beyond ctx.
	Timeout time.Duration
	Clock   application.Clock
}

// Service runs one assessment per call and always returns a conformant result.
type Service struct {
	provider ai.Provider
	fallback *fallback.Generator
	variant  assessment.Variant
	timeout  time.Duration
	clock    application.Clock
}

func NewService(provider ai.Provider, fb *fallback.Generator, opts Options) *Service {
	if provider == nil {
		provider = ai.NoClient{}
	}
	if opts.Clock == nil {
		opts.Clock = application.SystemClock{}
	}
	if fb == nil {
		fb = fallback.New(opts.Clock, nil)
	}
	if !opts.Variant.Valid() {
		opts.Variant = assessment.VariantNested
	}
	return &Service{
		provider: provider,
		fallback: fb,
		variant:  opts.Variant,
		timeout:  opts.Timeout,
		clock:    opts.Clock,
	}
}

func (s *Service) Variant() assessment.Variant { return s.variant }

// Analyze asks the model for an assessment of the two payloads. Any failure
// along the way is logged and answered with a fallback result.
func (s *Service) Analyze(ctx context.Context, conversation, behavioral map[string]any) *assessment.Result {
	sessionID := prompt.SessionID(conversation)
	log := logger.Log.WithFields(logrus.Fields{
		"session_id":      sessionID,
		"conversation":    len(conversation),
		"behavioral_keys": slices.Sorted(maps.Keys(behavioral)),
	})

	client, err := s.provider.Client()
	if err != nil {
		return s.degrade(log, "client unavailable", err)
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := s.clock.Now()
	res, err := client.Run(callCtx, prompt.GetUserPrompt(conversation, behavioral, start))
	if err != nil {
		return s.degrade(log, "model call failed", err)
	}
	if res == nil {
		return s.degrade(log, "model call failed", ai.ErrEmptyResponse)
	}
	if !res.Source.Valid() {
		tagged := *res
		tagged.Source = assessment.SourceModel
		res = &tagged
	}

	out, err := res.As(s.variant, sessionID)
	if err != nil {
		return s.degrade(log, "model result not convertible", err)
	}

	log.WithFields(logrus.Fields{
		"likelihood": out.Likelihood(),
		"confidence": out.Confidence(),
		"duration":   s.clock.Now().Sub(start),
	}).Info("assessment completed")
	return out
}

func (s *Service) degrade(log *logrus.Entry, reason string, err error) *assessment.Result {
	log.WithError(err).Warn(reason + ", returning fallback assessment")
	return s.fallback.Generate(s.variant)
}

// Fallback returns a fallback result in the service's variant without
// touching the model.
func (s *Service) Fallback() *assessment.Result {
	return s.fallback.Generate(s.variant)
}
