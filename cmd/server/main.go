// Command server runs the people-finder HTTP backend: the streaming
// multi-agent chat endpoint plus the person search, Apollo and LLM utility
// routes.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mukeshvancha122/Persona-Webscraping/agent"
	"github.com/mukeshvancha122/Persona-Webscraping/apollo"
	"github.com/mukeshvancha122/Persona-Webscraping/config"
	"github.com/mukeshvancha122/Persona-Webscraping/logging"
	"github.com/mukeshvancha122/Persona-Webscraping/orchestrator"
	"github.com/mukeshvancha122/Persona-Webscraping/planner"
	"github.com/mukeshvancha122/Persona-Webscraping/reasoning"
	"github.com/mukeshvancha122/Persona-Webscraping/search"
	"github.com/mukeshvancha122/Persona-Webscraping/server"
)

func main() {
	// Not fatal when absent; production sets real environment variables.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	logger := logging.NewLogrusAdapter(log)

	cfg := config.New()

	providers := map[string]reasoning.Provider{
		"google": reasoning.NewGemini(func(o *reasoning.GeminiOptions) {
			o.APIKey = cfg.GoogleAPIKey
		}),
		"anthropic": reasoning.NewAnthropic(func(o *reasoning.AnthropicOptions) {
			o.APIKey = cfg.AnthropicAPIKey
		}),
		"openrouter": reasoning.NewOpenRouter(cfg.OpenRouterAPIKey),
		"moonshot":   reasoning.NewMoonshot(cfg.MoonshotAPIKey),
	}

	plans := planner.New(providers, planner.WithLogger(logger))

	caller := agent.NewGeminiCaller(func(o *agent.GeminiCallerOptions) {
		o.APIKey = cfg.GoogleAPIKey
	})

	pipeline := orchestrator.New(plans, caller,
		orchestrator.WithLogger(logger),
		orchestrator.WithPlanProvider(cfg.PlanProvider()),
	)

	searches := search.NewService([]search.Provider{
		search.NewBrave(cfg.BraveAPIKey),
		search.NewZenserp(cfg.ZenserpAPIKey),
		search.NewPerplexity(cfg.PerplexityAPIKey),
		search.NewDuckDuckGo(),
	},
		search.WithLogger(logger),
		search.WithDefaultProvider(cfg.SearchProvider()),
	)

	srv := server.New(cfg, pipeline, plans, searches,
		server.WithLogger(logger),
		server.WithApollo(apollo.NewClient(cfg.ApolloAPIKey)),
		server.WithReasoningProviders(providers),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("port", cfg.Port()).Info("starting server")
	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server exited")
	}
}
