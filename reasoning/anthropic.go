package reasoning

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

// AnthropicOptions configure the Anthropic provider adapter.
type AnthropicOptions struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	BaseURL     string
	// APIKey resolves the credential at call time.
	APIKey func() string
}

// Anthropic wraps the Anthropic Messages API. Unlike Gemini, the API takes
// system instructions in a dedicated field.
type Anthropic struct {
	opts AnthropicOptions
}

// NewAnthropic creates an Anthropic provider with defaults overridable via option functions.
func NewAnthropic(optFns ...func(o *AnthropicOptions)) *Anthropic {
	opts := AnthropicOptions{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   2000,
		APIKey:      func() string { return "" },
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Anthropic{opts: opts}
}

// Complete implements Provider.
func (a *Anthropic) Complete(ctx context.Context, req Request) (string, error) {
	key := a.opts.APIKey()
	if key == "" {
		return "", &core.MissingCredentialError{Provider: "anthropic", EnvVar: "ANTHROPIC_API_KEY"}
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(key)}
	if a.opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(a.opts.BaseURL))
	}
	client := anthropic.NewClient(clientOpts...)

	params := anthropic.MessageNewParams{
		Model:       a.opts.Model,
		MaxTokens:   a.opts.MaxTokens,
		Temperature: anthropic.Float(a.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	resp, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", &core.UpstreamError{Provider: "anthropic", Err: err}
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			if text := block.AsText().Text; text != "" {
				return text, nil
			}
		}
	}
	return "", fmt.Errorf("anthropic: %w", core.ErrEmptyCompletion)
}

// Info implements Provider.
func (a *Anthropic) Info() Info {
	return Info{Name: string(a.opts.Model), Provider: "anthropic"}
}
