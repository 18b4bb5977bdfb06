// Package search normalizes heterogeneous web-search backends into one
// result shape. Providers are registered by name; lookups for unknown names
// and provider failures of any kind (missing credential, upstream error)
// degrade to an empty result list with a logged diagnostic, never an error.
// Results from different providers are kept in separate groups and are never
// merged or deduplicated here.
//
// Available providers:
//
//   - Brave: requires an API key via X-Subscription-Token, capped at 5 results
//   - ZenSERP: requires an API key (registered as "serpapi" for historical
//     reasons), capped at 10 results
//   - DuckDuckGo: free, no API key (scrapes the lite HTML interface)
//   - Perplexity: requires an API key, capped at 5 results
package search

import (
	"context"
	"strings"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
	"github.com/mukeshvancha122/Persona-Webscraping/logging"
)

// Provider executes a query against one web-search backend and returns
// normalized results in the vendor's own ranking order.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]core.SearchResult, error)
}

// Service routes queries to named providers with graceful degradation.
type Service struct {
	providers   map[string]Provider
	defaultName string
	logger      logging.Logger
}

// ServiceOption customizes Service construction.
type ServiceOption func(*Service)

// WithLogger sets the logger used for degradation diagnostics.
func WithLogger(logger logging.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithDefaultProvider sets the provider used when no name is given.
func WithDefaultProvider(name string) ServiceOption {
	return func(s *Service) { s.defaultName = name }
}

// NewService creates a Service over the given providers.
func NewService(providers []Provider, opts ...ServiceOption) *Service {
	s := &Service{
		providers:   make(map[string]Provider, len(providers)),
		defaultName: "brave",
		logger:      logging.NoOpLogger{},
	}
	for _, p := range providers {
		s.providers[strings.ToLower(p.Name())] = p
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultProvider returns the provider name used when none is requested.
func (s *Service) DefaultProvider() string { return s.defaultName }

// Search queries the named provider, or the default when name is empty.
// Unknown names and provider failures yield an empty list; the system favors
// graceful degradation over failure when a provider is unavailable.
func (s *Service) Search(ctx context.Context, query, providerName string) []core.SearchResult {
	name := strings.ToLower(strings.TrimSpace(providerName))
	if name == "" {
		name = s.defaultName
	}

	provider, ok := s.providers[name]
	if !ok {
		s.logger.Debug("unknown search provider", "provider", name)
		return []core.SearchResult{}
	}

	results, err := provider.Search(ctx, query)
	if err != nil {
		s.logger.Warn("search provider failed", "provider", name, "error", err)
		return []core.SearchResult{}
	}
	if results == nil {
		results = []core.SearchResult{}
	}
	return results
}
