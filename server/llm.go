package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
	"github.com/mukeshvancha122/Persona-Webscraping/persona"
	"github.com/mukeshvancha122/Persona-Webscraping/reasoning"
)

type generateRequest struct {
	Prompt   string `json:"prompt"`
	System   string `json:"system"`
	Provider string `json:"provider"`
}

// handleGenerate runs a one-shot completion against a named reasoning
// provider.
func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	name := strings.ToLower(strings.TrimSpace(req.Provider))
	if name == "" {
		name = s.cfg.PlanProvider()
	}
	provider, ok := s.providers[name]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported provider: %s", name)})
		return
	}

	text, err := provider.Complete(c.Request.Context(), reasoning.Request{
		System: req.System,
		User:   req.Prompt,
	})
	if err != nil {
		s.logger.Error("llm generate", "provider", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Generation failed: %v", err)})
		return
	}

	info := provider.Info()
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"provider": info.Provider,
		"model":    info.Name,
		"text":     text,
	})
}

type llmSearchRequest struct {
	Queries  []string `json:"queries"`
	Provider string   `json:"provider"`
}

type llmSearchEntry struct {
	Query    string               `json:"query"`
	Results  []core.SearchResult  `json:"results"`
	Personas []core.PersonaRecord `json:"personas"`
}

// handleLLMSearch runs a batch of queries against one search provider and
// extracts persona records from each result set.
func (s *Server) handleLLMSearch(c *gin.Context) {
	var req llmSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Queries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one query is required"})
		return
	}

	name := strings.ToLower(strings.TrimSpace(req.Provider))
	if name == "" {
		name = "perplexity"
	}

	ctx := c.Request.Context()
	entries := make([]llmSearchEntry, 0, len(req.Queries))
	for _, query := range req.Queries {
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		results := s.searches.Search(ctx, query, name)
		entries = append(entries, llmSearchEntry{
			Query:    query,
			Results:  results,
			Personas: persona.ExtractMany(results),
		})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "provider": name, "results": entries})
}
