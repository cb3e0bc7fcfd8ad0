package evaluation

import (
	"strings"

	"github.com/Seis05640/ai-voice-interviewer/internal/nlp"
)

// buildEvaluationExplanation composes one sentence per criterion from fixed
// threshold-driven catalogs.
func buildEvaluationExplanation(relevance, clarity, depth float64) string {
	parts := make([]string, 0, 3)

	switch {
	case relevance >= 0.8:
		parts = append(parts, "The answer directly addresses the question with strong alignment.")
	case relevance >= 0.6:
		parts = append(parts, "The answer addresses most aspects of the question.")
	case relevance >= 0.4:
		parts = append(parts, "The answer partially addresses the question but may miss some key points.")
	default:
		parts = append(parts, "The answer does not adequately address the question asked.")
	}

	switch {
	case clarity >= 0.8:
		parts = append(parts, "Communication is clear and well-structured.")
	case clarity >= 0.6:
		parts = append(parts, "Communication is generally clear with minor improvements possible.")
	case clarity >= 0.4:
		parts = append(parts, "Communication could be improved with better structure and examples.")
	default:
		parts = append(parts, "Communication needs significant improvement to be more understandable.")
	}

	switch {
	case depth >= 0.8:
		parts = append(parts, "Demonstrates strong subject knowledge with good detail and nuance.")
	case depth >= 0.6:
		parts = append(parts, "Shows good understanding with reasonable detail provided.")
	case depth >= 0.4:
		parts = append(parts, "Shows basic understanding but lacks depth and specific examples.")
	default:
		parts = append(parts, "Answer lacks sufficient detail and depth to demonstrate expertise.")
	}

	return strings.Join(parts, ". ")
}

func identifyStrengths(relevance, clarity, depth float64, answer string) []string {
	lower := strings.ToLower(answer)
	var strengths []string

	if relevance >= 0.8 {
		strengths = append(strengths, "Directly addresses the question")
	}
	if clarity >= 0.7 {
		strengths = append(strengths, "Clear and well-structured communication")
	}
	if depth >= 0.7 {
		strengths = append(strengths, "Demonstrates strong subject knowledge")
	}

	if strings.Contains(lower, "example") || strings.Contains(lower, "for instance") {
		strengths = append(strengths, "Uses concrete examples to illustrate points")
	}
	if orderedListRE.MatchString(lower) {
		strengths = append(strengths, "Well-organized with clear structure")
	}
	if containsAny(lower, []string{"however", "although", "trade-off"}) {
		strengths = append(strengths, "Shows awareness of nuance and complexity")
	}
	if percentOrDataRE.MatchString(answer) {
		strengths = append(strengths, "Uses specific metrics and data points")
	}

	if len(strengths) == 0 {
		return []string{"Answered the question"}
	}
	return strengths
}

func identifyWeaknesses(relevance, clarity, depth float64, answer string) []string {
	lower := strings.ToLower(answer)
	var weaknesses []string

	if relevance < 0.5 {
		weaknesses = append(weaknesses, "Does not fully address the question")
	}
	if clarity < 0.5 {
		weaknesses = append(weaknesses, "Could improve clarity and structure")
	}
	if depth < 0.5 {
		weaknesses = append(weaknesses, "Lacks depth and specific examples")
	}

	if len(nlp.Tokenize(answer)) < 30 {
		weaknesses = append(weaknesses, "Answer is too brief")
	}
	if strings.Contains(lower, "kind of") || strings.Contains(lower, "sort of") {
		weaknesses = append(weaknesses, "Uses tentative language")
	}
	if !containsAny(lower, []string{"example", "for instance", "such as"}) {
		weaknesses = append(weaknesses, "Could benefit from more concrete examples")
	}
	if !containsAny(lower, []string{"however", "although", "on the other hand"}) {
		weaknesses = append(weaknesses, "Could discuss trade-offs or alternative approaches")
	}

	if len(weaknesses) == 0 {
		return []string{"Minor areas for improvement exist"}
	}
	return weaknesses
}

func generateSuggestions(relevance, clarity, depth float64, answer string) []string {
	lower := strings.ToLower(answer)
	var suggestions []string

	if relevance < 0.6 {
		suggestions = append(suggestions, "Focus more directly on the core question asked")
	}
	if clarity < 0.6 {
		suggestions = append(suggestions,
			"Use a more structured format with clear points",
			"Include examples to make your answer more concrete")
	}
	if depth < 0.6 {
		suggestions = append(suggestions,
			"Provide more specific details and examples from your experience",
			"Discuss multiple approaches or considerations")
	}

	if len(nlp.Tokenize(answer)) < 50 {
		suggestions = append(suggestions, "Expand on your answer with more detail")
	}
	if !strings.Contains(lower, "example") {
		suggestions = append(suggestions, "Add specific examples to illustrate your points")
	}
	if !containsAny(lower, []string{"however", "although", "trade-off"}) {
		suggestions = append(suggestions, "Consider discussing trade-offs or alternative perspectives")
	}

	if len(suggestions) == 0 {
		return []string{"Continue with this approach"}
	}
	return suggestions
}
