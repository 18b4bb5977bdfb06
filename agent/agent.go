// Package agent provides the streaming call that executes one planned
// sub-task against a tool-using model. The model is granted a declarative
// web-search capability plus an addToKnowledge function whose invocations
// feed the shared knowledge log; this system never orchestrates the tools
// itself, the downstream model decides when to invoke them.
package agent

import "context"

// Chunk is one fragment of a streaming agent call. Exactly one of the
// fields is populated: a content fragment, a knowledge entry contributed via
// the addToKnowledge tool, or a terminal error marker. The channel is closed
// after a terminal error.
type Chunk struct {
	Text      string
	Knowledge string
	Err       error
}

// Caller executes one sub-task and yields its output lazily. Failures
// surface as a single error chunk rather than a returned error so the
// pipeline can convert them uniformly into its own terminal event.
type Caller interface {
	Stream(ctx context.Context, prompt, systemPrompt string) <-chan Chunk
}

// SubAgentSystemPrompt is the fixed capability description given to every
// sub-agent; the orchestrator appends the current knowledge log to it.
const SubAgentSystemPrompt = `You are a specialized research agent working as part of a team to answer complex questions.

Your capabilities:
- Use web search to find information online
- Use the 'addToKnowledge' tool to share findings with other agents
- Reference the knowledge base of previous agents' findings

Instructions:
- Be thorough but efficient
- Cite sources when sharing findings
- Use the addToKnowledge tool to save important information
- Focus on factual, verifiable information
- If search results are insufficient, try different search queries
- Provide clear, concise responses`

// MockCaller replays a scripted chunk sequence. Useful for pipeline tests.
type MockCaller struct {
	// Script maps a prompt to the chunks to replay. Prompts without an
	// entry fall back to Default.
	Script  map[string][]Chunk
	Default []Chunk
}

// Stream implements Caller.
func (m *MockCaller) Stream(ctx context.Context, prompt, _ string) <-chan Chunk {
	out := make(chan Chunk)
	chunks, ok := m.Script[prompt]
	if !ok {
		chunks = m.Default
	}
	go func() {
		defer close(out)
		for _, c := range chunks {
			select {
			case <-ctx.Done():
				return
			case out <- c:
			}
		}
	}()
	return out
}
