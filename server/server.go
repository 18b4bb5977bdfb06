// Package server exposes the backend over HTTP using gin. It owns routing,
// request validation and the SSE transport; all domain work is delegated to
// the injected collaborators (pipeline, planner, search service, reasoning
// providers, Apollo client).
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mukeshvancha122/Persona-Webscraping/apollo"
	"github.com/mukeshvancha122/Persona-Webscraping/config"
	"github.com/mukeshvancha122/Persona-Webscraping/core"
	"github.com/mukeshvancha122/Persona-Webscraping/logging"
	"github.com/mukeshvancha122/Persona-Webscraping/reasoning"
	"github.com/mukeshvancha122/Persona-Webscraping/search"
)

// Executor runs one query and streams progress events. Satisfied by
// orchestrator.Pipeline.
type Executor interface {
	Execute(ctx context.Context, query string) <-chan core.StreamEvent
}

// PlanService generates plans through named providers. Satisfied by
// planner.Planner.
type PlanService interface {
	Generate(ctx context.Context, query, providerName string) (core.Plan, error)
	Supports(name string) bool
}

// Server wires the HTTP routes to the injected collaborators.
type Server struct {
	cfg       *config.Config
	pipeline  Executor
	plans     PlanService
	searches  *search.Service
	apollo    *apollo.Client
	providers map[string]reasoning.Provider
	logger    logging.Logger
}

// Option customizes Server construction.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithApollo attaches the Apollo.io proxy client.
func WithApollo(client *apollo.Client) Option {
	return func(s *Server) { s.apollo = client }
}

// WithReasoningProviders exposes named providers on the llm routes.
func WithReasoningProviders(providers map[string]reasoning.Provider) Option {
	return func(s *Server) { s.providers = providers }
}

// New creates a Server.
func New(cfg *config.Config, pipeline Executor, plans PlanService, searches *search.Service, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		pipeline: pipeline,
		plans:    plans,
		searches: searches,
		logger:   logging.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.cors())

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	api.POST("/chat", s.handleChat)

	searchGroup := api.Group("/search")
	searchGroup.POST("/person", s.handlePersonSearch)
	searchGroup.POST("/apollo", s.handleApolloMatch)

	llm := api.Group("/llm")
	llm.POST("/generate", s.handleGenerate)
	llm.POST("/search", s.handleLLMSearch)

	return router
}

// Run serves HTTP on the configured port until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.cfg.Port(),
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// cors mirrors the allowed origin from configuration onto every response.
func (s *Server) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", s.cfg.FrontendURL())
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "PeopleFinder Backend is running"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
