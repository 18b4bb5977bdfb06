// Package planner turns a free-text query into an ordered execution plan by
// asking a reasoning provider for a JSON decomposition. Provider failures
// (credentials, connectivity) propagate; malformed plan responses degrade to
// an empty plan so one flaky completion never aborts the request.
package planner

import (
	"context"
	"errors"
	"strings"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
	"github.com/mukeshvancha122/Persona-Webscraping/logging"
	"github.com/mukeshvancha122/Persona-Webscraping/reasoning"
)

// FallbackResponse is the plan summary substituted when the model's answer
// cannot be parsed.
const FallbackResponse = "Unable to parse orchestrator response"

// ErrUnsupportedProvider is returned when the requested plan provider is not
// registered.
var ErrUnsupportedProvider = errors.New("unsupported plan provider")

// Planner generates plans through a set of named reasoning providers.
type Planner struct {
	providers map[string]reasoning.Provider
	logger    logging.Logger
}

// Option customizes Planner construction.
type Option func(*Planner)

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(logger logging.Logger) Option {
	return func(p *Planner) { p.logger = logger }
}

// New creates a Planner over the given named providers.
func New(providers map[string]reasoning.Provider, opts ...Option) *Planner {
	p := &Planner{providers: providers, logger: logging.NoOpLogger{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Supports reports whether a provider with the given name is registered.
func (p *Planner) Supports(name string) bool {
	_, ok := p.providers[strings.ToLower(name)]
	return ok
}

// Generate asks the named provider to decompose the query. Provider-level
// failures (missing credential, upstream error) are returned as errors. A
// response that cannot be parsed as a plan is degraded to an empty plan and
// logged, never raised.
func (p *Planner) Generate(ctx context.Context, query, providerName string) (core.Plan, error) {
	provider, ok := p.providers[strings.ToLower(providerName)]
	if !ok {
		return core.Plan{}, ErrUnsupportedProvider
	}

	text, err := provider.Complete(ctx, reasoning.Request{
		System: OrchestratorSystemPrompt,
		User:   buildUserPrompt(query),
	})
	if err != nil {
		return core.Plan{}, err
	}

	plan, err := ParsePlan(text)
	if err != nil {
		p.logger.Warn("failed to parse orchestrator response",
			"provider", providerName, "error", err, "raw", text)
		return core.Plan{Response: FallbackResponse, Agents: []core.Agent{}}, nil
	}
	return plan, nil
}
