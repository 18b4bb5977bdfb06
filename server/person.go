package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mukeshvancha122/Persona-Webscraping/apollo"
	"github.com/mukeshvancha122/Persona-Webscraping/core"
	"github.com/mukeshvancha122/Persona-Webscraping/persona"
)

type personSearchRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	ExtraContext    string   `json:"extra_context"`
	SearchProviders []string `json:"search_providers"`
	IncludePlan     *bool    `json:"include_plan"`
	IncludePersonas bool     `json:"include_personas"`
	PlanProvider    string   `json:"plan_provider"`
}

type providerResults struct {
	Provider string              `json:"provider"`
	Results  []core.SearchResult `json:"results"`
}

type personSearchResponse struct {
	Query            string               `json:"query"`
	Name             string               `json:"name"`
	Email            string               `json:"email"`
	PlanProvider     string               `json:"plan_provider"`
	OrchestratorPlan *core.Plan           `json:"orchestrator_plan,omitempty"`
	SearchResults    []providerResults    `json:"search_results"`
	Personas         []core.PersonaRecord `json:"personas,omitempty"`
}

// handlePersonSearch fans one person lookup out to the requested search
// providers and optionally attaches an orchestrator plan for the same query.
func (s *Server) handlePersonSearch(c *gin.Context) {
	var req personSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" && req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either name or email is required"})
		return
	}

	planProvider := strings.ToLower(strings.TrimSpace(req.PlanProvider))
	if planProvider == "" {
		planProvider = s.cfg.PlanProvider()
	}
	includePlan := req.IncludePlan == nil || *req.IncludePlan
	if includePlan && !s.plans.Supports(planProvider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported plan provider: %s", planProvider)})
		return
	}

	query := buildPersonQuery(req.Name, req.Email, req.ExtraContext)
	ctx := c.Request.Context()

	resp := personSearchResponse{
		Query:         query,
		Name:          req.Name,
		Email:         req.Email,
		PlanProvider:  planProvider,
		SearchResults: []providerResults{},
	}

	if includePlan {
		plan, err := s.plans.Generate(ctx, query, planProvider)
		if err != nil {
			s.logger.Error("generate orchestrator plan", "provider", planProvider, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to generate orchestrator plan: %v", err)})
			return
		}
		resp.OrchestratorPlan = &plan
	}

	for _, name := range normalizeProviders(req.SearchProviders, s.searches.DefaultProvider()) {
		results := s.searches.Search(ctx, query, name)
		resp.SearchResults = append(resp.SearchResults, providerResults{Provider: name, Results: results})
		if req.IncludePersonas {
			resp.Personas = append(resp.Personas, persona.ExtractMany(results)...)
		}
	}

	c.JSON(http.StatusOK, resp)
}

type apolloMatchRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// handleApolloMatch proxies a people-match lookup to Apollo.io.
func (s *Server) handleApolloMatch(c *gin.Context) {
	var req apolloMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if s.apollo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Apollo integration is not configured"})
		return
	}

	result, err := s.apollo.MatchPerson(c.Request.Context(), apollo.MatchRequest{
		Email:     strings.TrimSpace(req.Email),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	})
	if err != nil {
		var missing *core.MissingCredentialError
		var upstream *core.UpstreamError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Apollo API key is not configured"})
		case errors.As(err, &upstream) && upstream.Status != 0:
			c.JSON(upstream.Status, gin.H{"error": fmt.Sprintf("Apollo API error: %v", err)})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Apollo request failed: %v", err)})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": result.Found, "person": result.Person})
}

// buildPersonQuery joins the non-empty identity fields into one search query.
func buildPersonQuery(name, email, extra string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{name, email, strings.TrimSpace(extra)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// normalizeProviders lowercases, trims and deduplicates the requested
// provider names, falling back to the service default when none survive.
func normalizeProviders(names []string, fallback string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	if len(out) == 0 {
		out = append(out, fallback)
	}
	return out
}
