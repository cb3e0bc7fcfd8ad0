package interview

import (
	"encoding/json"
	"fmt"
)

// PlanToJSON serializes a question plan to its JSON array representation.
func PlanToJSON(plan []string) (string, error) {
	if plan == nil {
		plan = []string{}
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan: %w", err)
	}
	return string(data), nil
}

// PlanFromJSON deserializes a question plan from JSON. Malformed input or a
// non-array payload degrades to an empty plan rather than an error; non-string
// elements are stringified.
func PlanFromJSON(planJSON string) []string {
	var raw []any
	if err := json.Unmarshal([]byte(planJSON), &raw); err != nil {
		return []string{}
	}

	plan := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			plan = append(plan, s)
		} else {
			plan = append(plan, fmt.Sprintf("%v", item))
		}
	}
	return plan
}
