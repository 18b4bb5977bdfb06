package reasoning

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiOptions configure the Gemini provider adapter.
type GeminiOptions struct {
	Model           string
	Temperature     float64
	MaxOutputTokens int
	BaseURL         string
	HTTPClient      *http.Client
	// APIKey resolves the credential at call time so rotated keys are
	// picked up without a restart.
	APIKey func() string
}

// Gemini calls the Google Generative Language REST API. The API has no
// dedicated system role on this endpoint, so instructions are folded into a
// single user message.
type Gemini struct {
	opts GeminiOptions
}

// NewGemini creates a Gemini provider with defaults overridable via option functions.
func NewGemini(optFns ...func(o *GeminiOptions)) *Gemini {
	opts := GeminiOptions{
		Model:           "gemini-2.5-flash",
		Temperature:     0.7,
		MaxOutputTokens: 2000,
		BaseURL:         geminiDefaultBaseURL,
		HTTPClient:      &http.Client{Timeout: 30 * time.Second},
		APIKey:          func() string { return "" },
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Gemini{opts: opts}
}

// Complete implements Provider.
func (g *Gemini) Complete(ctx context.Context, req Request) (string, error) {
	key := g.opts.APIKey()
	if key == "" {
		return "", &core.MissingCredentialError{Provider: "google", EnvVar: "GOOGLE_API_KEY"}
	}

	text := req.User
	if req.System != "" {
		text = fmt.Sprintf("System: %s\n\nUser Query: %s", req.System, req.User)
	}

	body, _ := sjson.Set("", "contents.0.role", "user")
	body, _ = sjson.Set(body, "contents.0.parts.0.text", text)
	body, _ = sjson.Set(body, "generationConfig.temperature", g.opts.Temperature)
	body, _ = sjson.Set(body, "generationConfig.maxOutputTokens", g.opts.MaxOutputTokens)

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.opts.BaseURL, g.opts.Model, url.QueryEscape(key))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte(body)))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.opts.HTTPClient.Do(httpReq)
	if err != nil {
		return "", &core.UpstreamError{Provider: "google", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &core.UpstreamError{Provider: "google", Status: resp.StatusCode}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &core.UpstreamError{Provider: "google", Err: err}
	}

	candidate := gjson.GetBytes(payload, "candidates.0.content.parts.0.text")
	if !candidate.Exists() {
		return "", fmt.Errorf("google: %w", core.ErrEmptyCompletion)
	}
	return candidate.String(), nil
}

// Info implements Provider.
func (g *Gemini) Info() Info {
	return Info{Name: g.opts.Model, Provider: "google"}
}
