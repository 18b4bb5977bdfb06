// Package orchestrator drives the execution of one query end to end: plan
// generation, sequential sub-task execution against a tool-using agent call,
// and incremental event emission over a long-lived channel. Later agents may
// depend on earlier findings through the shared knowledge log, so agents
// never run concurrently; any agent reading the log only sees entries
// committed by agents that ran strictly before it.
package orchestrator

import (
	"context"
	"strings"

	"github.com/mukeshvancha122/Persona-Webscraping/agent"
	"github.com/mukeshvancha122/Persona-Webscraping/core"
	"github.com/mukeshvancha122/Persona-Webscraping/logging"
)

// PlanGenerator produces a plan for a query through a named reasoning
// provider. Satisfied by planner.Planner.
type PlanGenerator interface {
	Generate(ctx context.Context, query, providerName string) (core.Plan, error)
}

// Pipeline executes queries. One Pipeline serves many requests; all per-
// request state (plan, knowledge log) lives inside Execute.
type Pipeline struct {
	plans        PlanGenerator
	caller       agent.Caller
	planProvider string
	logger       logging.Logger
}

// Option customizes Pipeline construction.
type Option func(*Pipeline)

// WithLogger sets the pipeline logger.
func WithLogger(logger logging.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithPlanProvider overrides the reasoning provider used for planning.
func WithPlanProvider(name string) Option {
	return func(p *Pipeline) { p.planProvider = name }
}

// New creates a Pipeline over the given plan generator and agent caller.
func New(plans PlanGenerator, caller agent.Caller, opts ...Option) *Pipeline {
	p := &Pipeline{
		plans:        plans,
		caller:       caller,
		planProvider: "google",
		logger:       logging.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Execute runs the query and returns a finite, non-restartable event
// sequence. The channel is closed when the run completes, fails or the
// context is cancelled; consumers are expected to forward each event as it
// arrives. Any failure during planning or agent execution terminates the
// sequence with a single error event and skips the remaining agents.
func (p *Pipeline) Execute(ctx context.Context, query string) <-chan core.StreamEvent {
	out := make(chan core.StreamEvent, 16)

	go func() {
		defer close(out)

		invocationID := core.NewID()
		log := p.logger

		emit := func(ev core.StreamEvent) bool {
			if ctx.Err() != nil {
				return false
			}
			select {
			case <-ctx.Done():
				return false
			case out <- ev:
				return true
			}
		}

		plan, err := p.plans.Generate(ctx, query, p.planProvider)
		if err != nil {
			log.Error("plan generation failed", "invocation_id", invocationID, "error", err)
			emit(core.NewErrorEvent(err.Error()))
			return
		}
		if !emit(core.NewPlanEvent(plan)) {
			return
		}
		log.Info("plan generated", "invocation_id", invocationID, "agents", len(plan.Agents))

		var knowledge []string
		for i, a := range plan.Agents {
			if !emit(core.NewAgentStartEvent(a)) {
				return
			}

			systemPrompt := buildSystemPrompt(knowledge)
			for chunk := range p.caller.Stream(ctx, a.Prompt, systemPrompt) {
				switch {
				case chunk.Err != nil:
					log.Error("agent call failed",
						"invocation_id", invocationID, "agent_index", i, "error", chunk.Err)
					emit(core.NewErrorEvent(chunk.Err.Error()))
					return
				case chunk.Knowledge != "":
					knowledge = append(knowledge, chunk.Knowledge)
					log.Debug("knowledge recorded",
						"invocation_id", invocationID, "agent_index", i, "entries", len(knowledge))
				case chunk.Text != "":
					if !emit(core.NewChunkEvent(chunk.Text)) {
						return
					}
				}
			}

			if !emit(core.NewAgentEndEvent(a)) {
				return
			}
		}
	}()

	return out
}

// buildSystemPrompt renders the fixed capability description plus the
// knowledge log as a bulleted block. The knowledge section is omitted
// entirely while the log is empty.
func buildSystemPrompt(knowledge []string) string {
	if len(knowledge) == 0 {
		return agent.SubAgentSystemPrompt
	}
	var b strings.Builder
	b.WriteString(agent.SubAgentSystemPrompt)
	b.WriteString("\n\nKnowledge Base:\n")
	for i, entry := range knowledge {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(entry)
	}
	return b.String()
}
