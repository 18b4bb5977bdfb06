// Package reasoning normalizes external text-completion services behind one
// capability: complete a prompt and return text. Provider-specific request
// and response envelopes stay inside each adapter; one provider embeds
// instructions as a single concatenated user message, another accepts a
// distinct system-role field, and downstream code never branches on the
// difference.
package reasoning

import (
	"context"
	"fmt"
)

// Request captures the normalized single-turn completion input.
type Request struct {
	System string // System instructions (may be empty)
	User   string // User prompt
}

// Info contains metadata about a provider implementation.
type Info struct {
	Name     string `json:"name"`     // Model identifier
	Provider string `json:"provider"` // "google", "anthropic", "openrouter", ...
}

// Provider is the minimal interface required to turn a prompt into text.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)

	// Info returns information about the provider implementation.
	Info() Info
}

// MockProvider is a lightweight in-memory Provider useful for tests.
type MockProvider struct {
	info      Info
	responses map[string]string
	err       error
}

// NewMockProvider constructs a MockProvider with the given identity.
func NewMockProvider(name, provider string) *MockProvider {
	return &MockProvider{
		info:      Info{Name: name, Provider: provider},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for a user prompt.
func (m *MockProvider) AddResponse(user, response string) { m.responses[user] = response }

// Fail makes every subsequent Complete call return err.
func (m *MockProvider) Fail(err error) { m.err = err }

// Complete implements Provider.
func (m *MockProvider) Complete(_ context.Context, req Request) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if resp, ok := m.responses[req.User]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", req.User), nil
}

// Info implements Provider.
func (m *MockProvider) Info() Info { return m.info }
