package planner

import (
	"encoding/json"
	"strings"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

// ExtractJSON locates a JSON document inside raw model text. Models often
// wrap their answer in a fenced code block; the content between the first
// pair of fences is preferred (a "json" language tag is tolerated), falling
// back to the whole text.
func ExtractJSON(text string) string {
	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	if strings.Contains(text, "```") {
		parts := strings.SplitN(text, "```", 3)
		if len(parts) >= 2 {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(text)
}

// ParsePlan deserializes model text into a Plan, tolerating code fences.
// A failure is reported as a ParseError wrapping ErrPlanParse so callers can
// degrade instead of aborting.
func ParsePlan(text string) (core.Plan, error) {
	raw := ExtractJSON(text)

	var plan core.Plan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return core.Plan{}, &core.ParseError{Raw: text, Err: core.ErrPlanParse}
	}
	return plan, nil
}
