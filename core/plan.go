package core

import "github.com/google/uuid"

// Agent describes one planned sub-task. Identity is positional: an agent is
// addressed by its index in the owning Plan, not by a stable id.
type Agent struct {
	Task   string `json:"task"`   // Short human-readable label
	Prompt string `json:"prompt"` // Full instructions for the sub-task
}

// Plan is the decomposition of a user query into an ordered list of
// sub-tasks. It is produced once per request, immutable after creation and
// never persisted.
type Plan struct {
	Response string  `json:"response"` // Human-readable summary of the plan
	Agents   []Agent `json:"agents"`   // Sub-tasks in execution order
}

// NewID generates a unique identifier used to correlate the events of one
// streaming invocation.
func NewID() string { return uuid.NewString() }
