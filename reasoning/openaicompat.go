package reasoning

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

// Base URLs of the OpenAI-compatible vendors this backend knows about.
const (
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
	MoonshotBaseURL   = "https://api.moonshot.cn/v1"
)

// OpenAICompatOptions configure an adapter for any vendor speaking the
// OpenAI chat-completions dialect.
type OpenAICompatOptions struct {
	Name        string // Logical provider name ("openrouter", "moonshot")
	Model       string
	Temperature float64
	MaxTokens   int64
	BaseURL     string
	EnvVar      string // Reported when the credential is absent
	// APIKey resolves the credential at call time.
	APIKey func() string
}

// OpenAICompat wraps an OpenAI-compatible chat-completions endpoint behind
// the Provider interface.
type OpenAICompat struct {
	opts OpenAICompatOptions
}

// NewOpenAICompat creates an adapter for an arbitrary OpenAI-compatible vendor.
func NewOpenAICompat(optFns ...func(o *OpenAICompatOptions)) *OpenAICompat {
	opts := OpenAICompatOptions{
		Name:        "openai",
		Model:       "openai/gpt-4-turbo",
		Temperature: 0.7,
		MaxTokens:   2000,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.APIKey == nil {
		opts.APIKey = func() string { return "" }
	}
	return &OpenAICompat{opts: opts}
}

// NewOpenRouter creates an adapter for the OpenRouter gateway.
func NewOpenRouter(apiKey func() string, optFns ...func(o *OpenAICompatOptions)) *OpenAICompat {
	base := func(o *OpenAICompatOptions) {
		o.Name = "openrouter"
		o.BaseURL = OpenRouterBaseURL
		o.EnvVar = "OPENROUTER_API_KEY"
		o.APIKey = apiKey
	}
	return NewOpenAICompat(append([]func(o *OpenAICompatOptions){base}, optFns...)...)
}

// NewMoonshot creates an adapter for the Moonshot AI platform.
func NewMoonshot(apiKey func() string, optFns ...func(o *OpenAICompatOptions)) *OpenAICompat {
	base := func(o *OpenAICompatOptions) {
		o.Name = "moonshot"
		o.Model = "moonshot-v1-8k"
		o.BaseURL = MoonshotBaseURL
		o.EnvVar = "MOONSHOTAI_API_KEY"
		o.APIKey = apiKey
	}
	return NewOpenAICompat(append([]func(o *OpenAICompatOptions){base}, optFns...)...)
}

// Complete implements Provider.
func (o *OpenAICompat) Complete(ctx context.Context, req Request) (string, error) {
	key := o.opts.APIKey()
	if key == "" {
		envVar := o.opts.EnvVar
		if envVar == "" {
			envVar = "OPENAI_API_KEY"
		}
		return "", &core.MissingCredentialError{Provider: o.opts.Name, EnvVar: envVar}
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(key)}
	if o.opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(o.opts.BaseURL))
	}
	client := openai.NewClient(clientOpts...)

	var messages []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.User))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               o.opts.Model,
		Messages:            messages,
		Temperature:         openai.Float(o.opts.Temperature),
		MaxCompletionTokens: openai.Int(o.opts.MaxTokens),
	})
	if err != nil {
		return "", &core.UpstreamError{Provider: o.opts.Name, Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%s: %w", o.opts.Name, core.ErrEmptyCompletion)
	}
	return resp.Choices[0].Message.Content, nil
}

// Info implements Provider.
func (o *OpenAICompat) Info() Info {
	return Info{Name: o.opts.Model, Provider: o.opts.Name}
}
