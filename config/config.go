// Package config exposes the environment-sourced configuration of the
// backend. Credentials are looked up at call time rather than captured at
// startup so a process picks up rotated keys without restarting; defaults
// cover the non-secret knobs (listen port, default providers, allowed
// origin).
package config

import (
	"github.com/spf13/viper"
)

// Default values applied when the corresponding variable is unset.
const (
	DefaultPort           = "3001"
	DefaultSearchProvider = "brave"
	DefaultPlanProvider   = "google"
	DefaultFrontendURL    = "http://localhost:3000"
)

// Config reads settings from the process environment through a dedicated
// viper instance, allowing tests to inject values without touching the
// global environment.
type Config struct {
	v *viper.Viper
}

// New creates a Config bound to the process environment.
func New() *Config {
	v := viper.New()
	v.AutomaticEnv()
	return &Config{v: v}
}

// NewFromViper creates a Config reading from the supplied viper instance.
// Intended for tests.
func NewFromViper(v *viper.Viper) *Config { return &Config{v: v} }

// first returns the first non-empty value among the given keys.
func (c *Config) first(keys ...string) string {
	for _, key := range keys {
		if val := c.v.GetString(key); val != "" {
			return val
		}
	}
	return ""
}

// Port returns the HTTP listen port.
func (c *Config) Port() string {
	if port := c.v.GetString("PORT"); port != "" {
		return port
	}
	return DefaultPort
}

// FrontendURL returns the origin allowed on cross-origin responses.
func (c *Config) FrontendURL() string {
	if u := c.v.GetString("FRONTEND_URL"); u != "" {
		return u
	}
	return DefaultFrontendURL
}

// SearchProvider returns the default web-search provider name.
func (c *Config) SearchProvider() string {
	if p := c.v.GetString("SEARCH_PROVIDER"); p != "" {
		return p
	}
	return DefaultSearchProvider
}

// PlanProvider returns the default reasoning provider used for planning.
func (c *Config) PlanProvider() string {
	if p := c.v.GetString("PLAN_PROVIDER"); p != "" {
		return p
	}
	return DefaultPlanProvider
}

// GoogleAPIKey returns the Gemini credential. Both historical variable
// names are honored.
func (c *Config) GoogleAPIKey() string { return c.first("GOOGLE_API_KEY", "GEMINI_API_KEY") }

// AnthropicAPIKey returns the Anthropic credential.
func (c *Config) AnthropicAPIKey() string { return c.v.GetString("ANTHROPIC_API_KEY") }

// OpenRouterAPIKey returns the OpenRouter credential.
func (c *Config) OpenRouterAPIKey() string { return c.v.GetString("OPENROUTER_API_KEY") }

// MoonshotAPIKey returns the Moonshot AI credential.
func (c *Config) MoonshotAPIKey() string { return c.v.GetString("MOONSHOTAI_API_KEY") }

// BraveAPIKey returns the Brave Search credential. Both historical variable
// names are honored.
func (c *Config) BraveAPIKey() string { return c.first("BRAVE_SEARCH_API_KEY", "BRAVE_API_KEY") }

// ZenserpAPIKey returns the ZenSERP credential. The SERPAPI name is kept
// for older deployments.
func (c *Config) ZenserpAPIKey() string { return c.first("ZENSERP_API_KEY", "SERPAPI_API_KEY") }

// PerplexityAPIKey returns the Perplexity credential.
func (c *Config) PerplexityAPIKey() string { return c.v.GetString("PERPLEXITY_API_KEY") }

// ApolloAPIKey returns the Apollo.io credential.
func (c *Config) ApolloAPIKey() string { return c.v.GetString("APOLLO_API_KEY") }
