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

const zenserpMaxResults = 10

// Zenserp uses the ZenSERP API. The provider is registered under the name
// "serpapi", which this project used historically.
type Zenserp struct {
	apiKey  func() string
	baseURL string
	client  *http.Client
}

// NewZenserp constructs a ZenSERP search provider. The key is resolved at call time.
func NewZenserp(apiKey func() string) *Zenserp {
	return &Zenserp{
		apiKey:  apiKey,
		baseURL: "https://app.zenserp.com",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewZenserpWithClient constructs a ZenSERP provider against a custom
// endpoint and client. Useful for tests.
func NewZenserpWithClient(apiKey func() string, baseURL string, client *http.Client) *Zenserp {
	return &Zenserp{apiKey: apiKey, baseURL: baseURL, client: client}
}

// Name implements Provider.
func (z *Zenserp) Name() string { return "serpapi" }

// Search implements Provider. The vendor's position field is preferred; the
// legacy rank field and finally enumeration order (1-based) fill in when it
// is absent.
func (z *Zenserp) Search(ctx context.Context, query string) ([]core.SearchResult, error) {
	key := z.apiKey()
	if key == "" {
		return nil, &core.MissingCredentialError{Provider: "serpapi", EnvVar: "ZENSERP_API_KEY"}
	}

	endpoint := fmt.Sprintf("%s/api/v2/search?apikey=%s&q=%s",
		z.baseURL, url.QueryEscape(key), url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := z.client.Do(req)
	if err != nil {
		return nil, &core.UpstreamError{Provider: "serpapi", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &core.UpstreamError{Provider: "serpapi", Status: resp.StatusCode}
	}

	var payload struct {
		Organic []struct {
			Position    int    `json:"position"`
			Rank        int    `json:"rank"`
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"organic"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &core.ParseError{Err: err}
	}

	results := make([]core.SearchResult, 0, zenserpMaxResults)
	for i, r := range payload.Organic {
		if i >= zenserpMaxResults {
			break
		}
		position := r.Position
		if position == 0 {
			position = r.Rank
		}
		if position == 0 {
			position = i + 1
		}
		results = append(results, core.SearchResult{
			Position: position,
			Title:    r.Title,
			Link:     r.URL,
			Snippet:  r.Description,
		})
	}
	return results, nil
}
