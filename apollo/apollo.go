// Package apollo provides a thin client for the Apollo.io people-match API.
// The backend proxies it unconditionally: one request in, one upstream call,
// one response out.
package apollo

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

// MatchRequest identifies the person to look up. Email is required by the
// people-match endpoint; names sharpen the match when present.
type MatchRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// MatchResult is the outcome of one lookup. Apollo returns 200 even without
// a match; Person is nil in that case.
type MatchResult struct {
	Found  bool            `json:"found"`
	Person json.RawMessage `json:"person,omitempty"`
}

// Client calls the Apollo.io people-match endpoint.
type Client struct {
	apiKey  func() string
	baseURL string
	client  *http.Client
}

// NewClient constructs an Apollo client. The key is resolved at call time.
func NewClient(apiKey func() string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.apollo.io",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithHTTP constructs a client against a custom endpoint and HTTP
// client. Useful for tests.
func NewClientWithHTTP(apiKey func() string, baseURL string, client *http.Client) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, client: client}
}

// MatchPerson performs one people-match lookup.
func (c *Client) MatchPerson(ctx context.Context, match MatchRequest) (*MatchResult, error) {
	key := c.apiKey()
	if key == "" {
		return nil, &core.MissingCredentialError{Provider: "apollo", EnvVar: "APOLLO_API_KEY"}
	}

	payload := struct {
		MatchRequest
		APIKey string `json:"api_key"`
	}{MatchRequest: match, APIKey: key}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/people/match", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &core.UpstreamError{Provider: "apollo", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &core.UpstreamError{Provider: "apollo", Status: resp.StatusCode}
	}

	var decoded struct {
		Person json.RawMessage `json:"person"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &core.ParseError{Err: err}
	}

	result := &MatchResult{}
	if len(decoded.Person) > 0 && string(decoded.Person) != "null" {
		result.Found = true
		result.Person = decoded.Person
	}
	return result, nil
}
