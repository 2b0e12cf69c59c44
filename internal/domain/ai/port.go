package ai

import (
	"context"
	"fmt"

	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
)

// Client is a structured-output model client bound to one assessment variant.
// Run issues one logical call; any retrying happens inside the client.
type Client interface {
	Run(ctx context.Context, prompt string) (*assessment.Result, error)
}

// Provider hands out the client used for a request.
type Provider interface {
	Client() (Client, error)
}

// NoClient is the provider used when no backend is configured.
type NoClient struct {
	Reason string
}

func (n NoClient) Client() (Client, error) {
	if n.Reason == "" {
		return nil, ErrNoClient
	}
	return nil, fmt.Errorf("%w: %s", ErrNoClient, n.Reason)
}

// Static always returns the same client.
type Static struct {
	C Client
}

func (s Static) Client() (Client, error) {
	if s.C == nil {
		return nil, ErrNoClient
	}
	return s.C, nil
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn sent to a model transport.
type Message struct {
	Role    Role
	Content string
}

// Transport sends a conversation to a model backend and returns the raw reply text.
type Transport interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
