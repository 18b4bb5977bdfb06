package core

// StreamEvent is a closed union of the progress records emitted while a
// query executes. Concrete event types implement the unexported isEvent
// marker. Events are ephemeral: produced, transmitted, never stored.
//
// Exactly one PlanEvent opens a session. Each agent then contributes one
// AgentStartEvent, zero or more ChunkEvents and one AgentEndEvent, unless a
// fatal error truncates the sequence with a single ErrorEvent.
type StreamEvent interface{ isEvent() }

// PlanEvent announces the generated plan before any agent runs.
type PlanEvent struct {
	Type string `json:"type"`
	Plan Plan   `json:"plan"`
}

func (PlanEvent) isEvent() {}

// AgentStartEvent marks the beginning of one sub-task execution.
type AgentStartEvent struct {
	Type   string `json:"type"`
	Agent  string `json:"agent"`
	Task   string `json:"task"`
	Prompt string `json:"prompt"`
}

func (AgentStartEvent) isEvent() {}

// ChunkEvent carries one content fragment from the running agent, forwarded
// in the order the upstream call delivered it.
type ChunkEvent struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

func (ChunkEvent) isEvent() {}

// AgentEndEvent marks the completion of one sub-task execution.
type AgentEndEvent struct {
	Type  string `json:"type"`
	Agent string `json:"agent"`
}

func (AgentEndEvent) isEvent() {}

// ErrorEvent reports an unrecoverable failure and terminates the stream.
type ErrorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func (ErrorEvent) isEvent() {}

// NewPlanEvent creates the opening event carrying the generated plan.
func NewPlanEvent(plan Plan) PlanEvent { return PlanEvent{Type: "plan", Plan: plan} }

// NewAgentStartEvent creates the start marker for the given sub-task.
func NewAgentStartEvent(a Agent) AgentStartEvent {
	return AgentStartEvent{Type: "agentStart", Agent: a.Task, Task: a.Task, Prompt: a.Prompt}
}

// NewChunkEvent wraps one streamed content fragment.
func NewChunkEvent(data string) ChunkEvent { return ChunkEvent{Type: "response", Data: data} }

// NewAgentEndEvent creates the completion marker for the given sub-task.
func NewAgentEndEvent(a Agent) AgentEndEvent { return AgentEndEvent{Type: "agentEnd", Agent: a.Task} }

// NewErrorEvent wraps a fatal error message.
func NewErrorEvent(msg string) ErrorEvent { return ErrorEvent{Type: "error", Error: msg} }
