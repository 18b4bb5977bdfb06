package agent

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"

// sseDataPrefix frames each payload line of a Gemini SSE stream.
const sseDataPrefix = "data: "

// GeminiCallerOptions configure the streaming Gemini agent call.
type GeminiCallerOptions struct {
	Model           string
	Temperature     float64
	MaxOutputTokens int
	BaseURL         string
	HTTPClient      *http.Client
	// APIKey resolves the credential at call time.
	APIKey func() string
}

// GeminiCaller streams sub-task execution through the Gemini
// streamGenerateContent endpoint with the declarative googleSearch tool and
// the addToKnowledge function exposed to the model.
type GeminiCaller struct {
	opts GeminiCallerOptions
}

// NewGeminiCaller creates a streaming caller with defaults overridable via option functions.
func NewGeminiCaller(optFns ...func(o *GeminiCallerOptions)) *GeminiCaller {
	opts := GeminiCallerOptions{
		Model:           "gemini-2.5-flash",
		Temperature:     0.7,
		MaxOutputTokens: 2000,
		BaseURL:         geminiDefaultBaseURL,
		HTTPClient:      &http.Client{Timeout: 60 * time.Second},
		APIKey:          func() string { return "" },
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &GeminiCaller{opts: opts}
}

// buildBody assembles the streaming request payload. Instructions are folded
// into a single user message; the tool set is declared, not orchestrated.
func (g *GeminiCaller) buildBody(prompt, systemPrompt string) string {
	text := prompt
	if systemPrompt != "" {
		text = fmt.Sprintf("System: %s\n\nUser: %s", systemPrompt, prompt)
	}

	body, _ := sjson.Set("", "contents.0.role", "user")
	body, _ = sjson.Set(body, "contents.0.parts.0.text", text)
	body, _ = sjson.SetRaw(body, "tools.0.googleSearch", "{}")
	body, _ = sjson.Set(body, "tools.1.functionDeclarations.0.name", "addToKnowledge")
	body, _ = sjson.Set(body, "tools.1.functionDeclarations.0.description",
		"Share an important finding with the other agents working on this query.")
	body, _ = sjson.Set(body, "tools.1.functionDeclarations.0.parameters.type", "object")
	body, _ = sjson.Set(body, "tools.1.functionDeclarations.0.parameters.properties.entry.type", "string")
	body, _ = sjson.Set(body, "tools.1.functionDeclarations.0.parameters.properties.entry.description",
		"The finding to record, with its source.")
	body, _ = sjson.Set(body, "tools.1.functionDeclarations.0.parameters.required.0", "entry")
	body, _ = sjson.Set(body, "generationConfig.temperature", g.opts.Temperature)
	body, _ = sjson.Set(body, "generationConfig.maxOutputTokens", g.opts.MaxOutputTokens)
	return body
}

// Stream implements Caller. All failures, including a missing credential,
// surface as a single error chunk before the channel closes.
func (g *GeminiCaller) Stream(ctx context.Context, prompt, systemPrompt string) <-chan Chunk {
	out := make(chan Chunk, 16)

	go func() {
		defer close(out)

		key := g.opts.APIKey()
		if key == "" {
			out <- Chunk{Err: &core.MissingCredentialError{Provider: "google", EnvVar: "GOOGLE_API_KEY"}}
			return
		}

		endpoint := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse&key=%s",
			g.opts.BaseURL, g.opts.Model, url.QueryEscape(key))

		body := g.buildBody(prompt, systemPrompt)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte(body)))
		if err != nil {
			out <- Chunk{Err: err}
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.opts.HTTPClient.Do(req)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			out <- Chunk{Err: &core.UpstreamError{Provider: "google", Err: err}}
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			out <- Chunk{Err: &core.UpstreamError{Provider: "google", Status: resp.StatusCode}}
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, sseDataPrefix) {
				continue
			}
			payload := strings.TrimSpace(line[len(sseDataPrefix):])
			if payload == "" || payload == "[DONE]" {
				continue
			}
			for _, chunk := range parseChunks(payload) {
				select {
				case <-ctx.Done():
					return
				case out <- chunk:
				}
			}
		}
		if err := scanner.Err(); err != nil && !errors.Is(err, context.Canceled) {
			out <- Chunk{Err: &core.UpstreamError{Provider: "google", Err: err}}
		}
	}()

	return out
}

// parseChunks extracts content fragments and addToKnowledge calls from one
// SSE payload. Payloads that do not decode as a candidate are skipped rather
// than aborting the stream.
func parseChunks(payload string) []Chunk {
	if !gjson.Valid(payload) {
		return nil
	}
	var chunks []Chunk
	parts := gjson.Get(payload, "candidates.0.content.parts")
	parts.ForEach(func(_, part gjson.Result) bool {
		if text := part.Get("text"); text.Exists() && text.String() != "" {
			chunks = append(chunks, Chunk{Text: text.String()})
		}
		call := part.Get("functionCall")
		if call.Get("name").String() == "addToKnowledge" {
			if entry := call.Get("args.entry").String(); entry != "" {
				chunks = append(chunks, Chunk{Knowledge: entry})
			}
		}
		return true
	})
	return chunks
}
