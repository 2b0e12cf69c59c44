// Package compat talks to OpenAI-compatible endpoints that lack native
// structured output. The schema travels inside the system message instead.
package compat

import (
	"context"
	"fmt"
	"strings"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	einoschema "github.com/cloudwego/eino/schema"

	domai "github.com/bryanwahyu/behavior-assessor/internal/domain/ai"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/prompt"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/schema"
)

type generator interface {
	Generate(ctx context.Context, input []*einoschema.Message, opts ...model.Option) (*einoschema.Message, error)
}

type Client struct {
	cm     generator
	schema string
}

func NewClient(ctx context.Context, apiKey, baseURL, modelName string, doc schema.Document) (*Client, error) {
	cm, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}
	return newWithModel(cm, doc), nil
}

func newWithModel(cm generator, doc schema.Document) *Client {
	return &Client{cm: cm, schema: doc.Indented()}
}

func (c *Client) Complete(ctx context.Context, messages []domai.Message) (string, error) {
	in := make([]*einoschema.Message, 0, len(messages)+1)
	hasSystem := false
	for _, m := range messages {
		switch m.Role {
		case domai.RoleSystem:
			hasSystem = true
			in = append(in, &einoschema.Message{Role: einoschema.System, Content: prompt.WithSchema(m.Content, c.schema)})
		case domai.RoleAssistant:
			in = append(in, &einoschema.Message{Role: einoschema.Assistant, Content: m.Content})
		default:
			in = append(in, &einoschema.Message{Role: einoschema.User, Content: m.Content})
		}
	}
	if !hasSystem {
		in = append([]*einoschema.Message{{Role: einoschema.System, Content: prompt.WithSchema("", c.schema)}}, in...)
	}

	resp, err := c.cm.Generate(ctx, in)
	if err != nil {
		if strings.Contains(err.Error(), "429") || strings.Contains(strings.ToLower(err.Error()), "too many requests") {
			return "", fmt.Errorf("%w: %v", domai.ErrQuotaExceeded, err)
		}
		return "", fmt.Errorf("chat model generate: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", domai.ErrEmptyResponse
	}
	return resp.Content, nil
}
