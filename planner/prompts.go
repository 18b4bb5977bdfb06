package planner

import "fmt"

// OrchestratorSystemPrompt instructs the reasoning provider to decompose a
// query into a small set of labeled sub-tasks.
const OrchestratorSystemPrompt = `You are an intelligent orchestrator agent designed to break down user queries into a structured plan of action.

Your job is to:
1. Understand the user's query
2. Break it down into logical, actionable sub-tasks
3. Create a plan with multiple specialized agents to handle different aspects
4. Each agent should have a clear task and a detailed prompt

Guidelines:
- Create 2-4 agents for typical queries
- Each agent should focus on a specific aspect
- Agents can use search, web browsing, and knowledge sharing
- The last agent should typically synthesize findings into a final answer
- Be descriptive in the prompts to help agents succeed

Return your response as JSON with:
- response: A brief message about your plan
- agents: Array of {task, prompt} objects`

// buildUserPrompt embeds the raw query plus an explicit request for the
// expected JSON object shape.
func buildUserPrompt(query string) string {
	return fmt.Sprintf(`%s

Please respond with a JSON object containing:
- response: A brief description of your plan
- agents: An array of agent objects, each with "task" and "prompt" fields`, query)
}
