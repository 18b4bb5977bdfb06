package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(viper.New())

	assert.Equal(t, DefaultPort, cfg.Port())
	assert.Equal(t, DefaultSearchProvider, cfg.SearchProvider())
	assert.Equal(t, DefaultPlanProvider, cfg.PlanProvider())
	assert.Equal(t, DefaultFrontendURL, cfg.FrontendURL())
	assert.Empty(t, cfg.GoogleAPIKey())
}

func TestCredentialFallbackNames(t *testing.T) {
	v := viper.New()
	v.Set("GEMINI_API_KEY", "gem-key")
	v.Set("BRAVE_API_KEY", "brave-key")
	v.Set("SERPAPI_API_KEY", "serp-key")
	cfg := NewFromViper(v)

	assert.Equal(t, "gem-key", cfg.GoogleAPIKey())
	assert.Equal(t, "brave-key", cfg.BraveAPIKey())
	assert.Equal(t, "serp-key", cfg.ZenserpAPIKey())
}

func TestPrimaryNameWins(t *testing.T) {
	v := viper.New()
	v.Set("GOOGLE_API_KEY", "primary")
	v.Set("GEMINI_API_KEY", "fallback")
	cfg := NewFromViper(v)

	assert.Equal(t, "primary", cfg.GoogleAPIKey())
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "8080")
	v.Set("SEARCH_PROVIDER", "serpapi")
	v.Set("FRONTEND_URL", "https://app.example.com")
	cfg := NewFromViper(v)

	assert.Equal(t, "8080", cfg.Port())
	assert.Equal(t, "serpapi", cfg.SearchProvider())
	assert.Equal(t, "https://app.example.com", cfg.FrontendURL())
}
