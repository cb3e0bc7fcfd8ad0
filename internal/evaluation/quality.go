package evaluation

import (
	"math"
	"strings"

	"github.com/Seis05640/ai-voice-interviewer/internal/nlp"
)

// AnswerQualityScore is a small deterministic score in [0, 1] based on answer
// length plus optional expected-term hits. Used for session-level reporting
// where a full per-question evaluation is not needed.
func AnswerQualityScore(answer string, expectedTerms []string) float64 {
	tokens := nlp.Tokenize(answer)
	if len(tokens) == 0 {
		return 0.0
	}

	lengthComponent := 1 - math.Exp(-float64(len(tokens))/60)

	if len(expectedTerms) == 0 {
		return lengthComponent
	}

	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}

	hits := 0
	for _, term := range expectedTerms {
		if _, ok := tokenSet[strings.ToLower(term)]; ok {
			hits++
		}
	}
	keywordComponent := float64(hits) / float64(len(expectedTerms))

	return math.Max(0.0, math.Min(1.0, 0.6*lengthComponent+0.4*keywordComponent))
}

// SessionScore averages the quality of candidate answers; empty input scores
// zero.
func SessionScore(answers []string) float64 {
	if len(answers) == 0 {
		return 0.0
	}
	total := 0.0
	for _, a := range answers {
		total += AnswerQualityScore(a, nil)
	}
	return total / float64(len(answers))
}

// RecommendationThreshold is the session score at or above which a hire is
// recommended.
const RecommendationThreshold = 0.6

// Recommendation maps a session score to a hire/no_hire decision.
func Recommendation(score float64) string {
	if score >= RecommendationThreshold {
		return "hire"
	}
	return "no_hire"
}
