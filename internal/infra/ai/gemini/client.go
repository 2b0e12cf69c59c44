// Package gemini sends assessment requests to Gemini with a native response schema.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	domai "github.com/bryanwahyu/behavior-assessor/internal/domain/ai"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/schema"
)

const defaultModel = "gemini-2.5-flash"

type Client struct {
	api       *genai.Client
	Model     string
	MaxTokens int32
	schema    *genai.Schema
}

// NewClient builds a Gemini API client. baseURL is optional and mostly used by tests.
func NewClient(ctx context.Context, apiKey, baseURL, model string, doc schema.Document) (*Client, error) {
	s, err := Convert(doc.Schema)
	if err != nil {
		return nil, err
	}
	cfg := &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	api, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{api: api, Model: model, MaxTokens: 8192, schema: s}, nil
}

func (c *Client) Complete(ctx context.Context, messages []domai.Message) (string, error) {
	var system []string
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case domai.RoleSystem:
			system = append(system, m.Content)
		case domai.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   c.schema,
		MaxOutputTokens:  c.MaxTokens,
	}
	if len(system) > 0 {
		cfg.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}

	resp, err := c.api.Models.GenerateContent(ctx, c.Model, contents, cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: %v", domai.ErrQuotaExceeded, err)
		}
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", domai.ErrEmptyResponse
	}
	return text, nil
}

// Convert maps a JSON Schema document onto genai's OpenAPI subset. Property
// ordering follows the required list, which is declaration order.
func Convert(node map[string]any) (*genai.Schema, error) {
	out := &genai.Schema{}
	typ, _ := node["type"].(string)
	switch typ {
	case "object":
		out.Type = genai.TypeObject
		props, _ := node["properties"].(map[string]any)
		required, _ := node["required"].([]string)
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, p := range props {
			child, ok := p.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: property %s", schema.ErrUnsupported, name)
			}
			s, err := Convert(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			out.Properties[name] = s
		}
		out.Required = required
		out.PropertyOrdering = required
	case "array":
		items, ok := node["items"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: array without items", schema.ErrUnsupported)
		}
		s, err := Convert(items)
		if err != nil {
			return nil, err
		}
		out.Type = genai.TypeArray
		out.Items = s
	case "string":
		out.Type = genai.TypeString
		if enum, ok := node["enum"].([]string); ok {
			out.Enum = enum
		}
		if f, ok := node["format"].(string); ok {
			out.Format = f
		}
	case "number", "integer":
		out.Type = genai.TypeNumber
		if typ == "integer" {
			out.Type = genai.TypeInteger
		}
		if v, ok := node["minimum"].(float64); ok {
			out.Minimum = genai.Ptr(v)
		}
		if v, ok := node["maximum"].(float64); ok {
			out.Maximum = genai.Ptr(v)
		}
	case "boolean":
		out.Type = genai.TypeBoolean
	default:
		return nil, fmt.Errorf("%w: type %q", schema.ErrUnsupported, typ)
	}
	return out, nil
}
