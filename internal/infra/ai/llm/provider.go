package llm

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/bryanwahyu/behavior-assessor/internal/config"
	"github.com/bryanwahyu/behavior-assessor/internal/domain/ai"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/compat"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/gemini"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/openai"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/schema"
)

type held struct{ c ai.Client }

// LazyProvider builds its client on first use and keeps it. Concurrent first
// calls may each build one; the first stored wins and the rest are dropped.
// Failed builds are not cached.
type LazyProvider struct {
	build func() (ai.Client, error)
	cur   atomic.Pointer[held]
}

func NewLazyProvider(build func() (ai.Client, error)) *LazyProvider {
	return &LazyProvider{build: build}
}

func (p *LazyProvider) Client() (ai.Client, error) {
	if h := p.cur.Load(); h != nil {
		return h.c, nil
	}
	c, err := p.build()
	if err != nil {
		return nil, err
	}
	p.cur.CompareAndSwap(nil, &held{c: c})
	return p.cur.Load().c, nil
}

// NewProvider picks the provider for a configuration. Missing credentials
// yield an explicit NoClient so every request takes the fallback path.
func NewProvider(cfg config.LLM) ai.Provider {
	switch cfg.Provider {
	case config.ProviderNone, "":
		return ai.NoClient{Reason: "llm.provider is none"}
	case config.ProviderOpenAI, config.ProviderGemini:
		if cfg.APIKey == "" {
			return ai.NoClient{Reason: "no api key for " + cfg.Provider}
		}
	case config.ProviderCompat:
		if cfg.BaseURL == "" {
			return ai.NoClient{Reason: "compat provider needs llm.baseURL"}
		}
	}
	return NewLazyProvider(func() (ai.Client, error) {
		return Build(context.Background(), cfg)
	})
}

// Build constructs the structured agent for a configured backend.
func Build(ctx context.Context, cfg config.LLM) (*Agent, error) {
	doc, err := schema.For(cfg.BackendVariant())
	if err != nil {
		return nil, err
	}

	var t ai.Transport
	switch cfg.Provider {
	case config.ProviderOpenAI:
		c := openai.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Model, doc)
		if cfg.MaxTokens > 0 {
			c.MaxTokens = cfg.MaxTokens
		}
		t = c
	case config.ProviderGemini:
		c, err := gemini.NewClient(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model, doc)
		if err != nil {
			return nil, err
		}
		if cfg.MaxTokens > 0 {
			c.MaxTokens = int32(cfg.MaxTokens)
		}
		t = c
	case config.ProviderCompat:
		c, err := compat.NewClient(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model, doc)
		if err != nil {
			return nil, err
		}
		t = c
	default:
		return nil, fmt.Errorf("%w: provider %q", ai.ErrNoClient, cfg.Provider)
	}

	opts := []Option{WithMaxRetries(cfg.MaxRetries)}
	if cfg.RPM > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		opts = append(opts, WithLimiter(rate.NewLimiter(rate.Limit(cfg.RPM/60.0), burst)))
	}
	return NewAgent(t, doc, opts...), nil
}
