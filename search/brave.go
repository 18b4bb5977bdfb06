package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

const braveMaxResults = 5

// Brave uses the Brave Search API. An API key is required via the
// X-Subscription-Token header.
type Brave struct {
	apiKey  func() string
	baseURL string
	client  *http.Client
}

// NewBrave constructs a Brave search provider. The key is resolved at call time.
func NewBrave(apiKey func() string) *Brave {
	return &Brave{
		apiKey:  apiKey,
		baseURL: "https://api.search.brave.com",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewBraveWithClient constructs a Brave provider against a custom endpoint
// and client. Useful for tests.
func NewBraveWithClient(apiKey func() string, baseURL string, client *http.Client) *Brave {
	return &Brave{apiKey: apiKey, baseURL: baseURL, client: client}
}

// Name implements Provider.
func (b *Brave) Name() string { return "brave" }

// Search implements Provider. Positions are assigned by enumeration order
// (1-based) since Brave does not report one.
func (b *Brave) Search(ctx context.Context, query string) ([]core.SearchResult, error) {
	key := b.apiKey()
	if key == "" {
		return nil, &core.MissingCredentialError{Provider: "brave", EnvVar: "BRAVE_SEARCH_API_KEY"}
	}

	endpoint := fmt.Sprintf("%s/res/v1/web/search?q=%s&count=%d&country=us",
		b.baseURL, url.QueryEscape(query), braveMaxResults)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", key)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &core.UpstreamError{Provider: "brave", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &core.UpstreamError{Provider: "brave", Status: resp.StatusCode}
	}

	var payload struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Description string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &core.ParseError{Err: err}
	}

	results := make([]core.SearchResult, 0, braveMaxResults)
	for i, r := range payload.Web.Results {
		if i >= braveMaxResults {
			break
		}
		results = append(results, core.SearchResult{
			Position: i + 1,
			Title:    r.Title,
			Link:     r.URL,
			Snippet:  r.Description,
		})
	}
	return results, nil
}
