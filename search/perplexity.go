package search

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

const perplexityMaxResults = 5

// Perplexity posts queries to the Perplexity search API.
type Perplexity struct {
	apiKey  func() string
	baseURL string
	client  *http.Client
}

// NewPerplexity constructs a Perplexity search provider. The key is resolved at call time.
func NewPerplexity(apiKey func() string) *Perplexity {
	return &Perplexity{
		apiKey:  apiKey,
		baseURL: "https://api.perplexity.ai",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewPerplexityWithClient constructs a Perplexity provider against a custom
// endpoint and client. Useful for tests.
func NewPerplexityWithClient(apiKey func() string, baseURL string, client *http.Client) *Perplexity {
	return &Perplexity{apiKey: apiKey, baseURL: baseURL, client: client}
}

// Name implements Provider.
func (p *Perplexity) Name() string { return "perplexity" }

// Search implements Provider. Positions are assigned by enumeration order
// (1-based). Result snippets may arrive under either a snippet or a text
// key; both map onto the normalized shape.
func (p *Perplexity) Search(ctx context.Context, query string) ([]core.SearchResult, error) {
	key := p.apiKey()
	if key == "" {
		return nil, &core.MissingCredentialError{Provider: "perplexity", EnvVar: "PERPLEXITY_API_KEY"}
	}

	body, err := json.Marshal(map[string]any{
		"query":       query,
		"max_results": perplexityMaxResults,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &core.UpstreamError{Provider: "perplexity", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &core.UpstreamError{Provider: "perplexity", Status: resp.StatusCode}
	}

	var payload struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Snippet string `json:"snippet"`
			Text    string `json:"text"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &core.ParseError{Err: err}
	}

	results := make([]core.SearchResult, 0, perplexityMaxResults)
	for i, r := range payload.Results {
		if i >= perplexityMaxResults {
			break
		}
		snippet := r.Snippet
		if snippet == "" {
			snippet = r.Text
		}
		results = append(results, core.SearchResult{
			Position: i + 1,
			Title:    r.Title,
			Link:     r.URL,
			Snippet:  snippet,
		})
	}
	return results, nil
}
