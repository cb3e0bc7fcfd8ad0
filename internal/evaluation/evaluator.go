// Package evaluation scores interview answers on relevance, clarity and
// depth, and renders evaluation reports. Scoring is fully deterministic and
// based on lexical markers; no model inference is involved.
package evaluation

import (
	"math"
	"regexp"
	"strings"

	"github.com/Seis05640/ai-voice-interviewer/internal/nlp"
	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// Weights for the evaluation criteria.
const (
	relevanceWeight = 0.50
	depthWeight     = 0.30
	clarityWeight   = 0.20
)

// Stop words removed from the question before relevance keyword matching.
var questionStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "can": {}, "could": {}, "should": {},
	"may": {}, "might": {}, "must": {}, "what": {}, "how": {}, "why": {},
	"when": {}, "where": {}, "who": {}, "which": {}, "tell": {}, "me": {},
	"about": {}, "your": {}, "you": {}, "to": {}, "for": {}, "of": {}, "in": {},
}

// Transition phrases that suggest the answer engages with the question.
var relevanceBoosters = []string{
	"first", "second", "third", "finally", "in my experience",
	"specifically", "for example", "to illustrate", "basically",
	"essentially", "primarily", "mainly", "therefore", "consequently",
	"as a result", "because", "since", "due to",
}

var exampleIndicators = []string{
	"for example", "for instance", "such as", "like", "specifically",
	"to illustrate", "consider this", "imagine", "let's say", "e.g.",
}

var flowIndicators = []string{
	"first", "second", "third", "next", "then", "finally", "lastly",
	"additionally", "furthermore", "moreover", "also", "besides",
	"however", "on the other hand", "conversely", "alternatively",
	"therefore", "thus", "consequently", "as a result", "because",
	"so", "in conclusion", "in summary", "overall",
}

var ambiguousMarkers = []string{
	"kind of", "sort of", "maybe", "perhaps", "i think", "i guess",
	"probably", "possibly", "might be", "could be", "not sure",
	"uh", "um", "hmm", "like", "you know",
}

var concreteIndicators = []string{
	"in my previous role", "at my last company", "i worked on",
	"we implemented", "the project involved", "for instance",
	"specifically", "one time when", "a situation where",
}

var nuanceIndicators = []string{
	"however", "although", "while", "on the other hand", "conversely",
	"trade-off", "balance", "depends on", "consider", "alternative",
	"pros and cons", "advantage", "disadvantage", "challenge",
	"limitation", "it's important to note", "keep in mind",
}

var approachIndicators = []string{
	"first approach", "second method", "alternative way", "another option",
	"one way", "another way", "also", "additionally", "furthermore",
	"in addition", "besides", "moreover",
}

var (
	sentenceSplitRE = regexp.MustCompile(`[.!?]+`)
	bulletLineRE    = regexp.MustCompile(`(?m)^\s*[-*•]\s+`)
	numberedLineRE  = regexp.MustCompile(`(?m)^\s*\d+[.)]\s+`)
	metricsRE       = regexp.MustCompile(`\d+%|\d+\.\d+|\d+ years|\d+ months`)
	orderedListRE   = regexp.MustCompile(`first.*second.*third`)
	percentOrDataRE = regexp.MustCompile(`\d+%|\d+\.\d+`)
)

func countContained(textLower string, markers []string) int {
	count := 0
	for _, m := range markers {
		if strings.Contains(textLower, m) {
			count++
		}
	}
	return count
}

func containsAny(textLower string, markers []string) bool {
	return countContained(textLower, markers) > 0
}

func clamp01(x float64) float64 {
	return math.Min(math.Max(x, 0.0), 1.0)
}

// calculateRelevance measures how well the answer addresses the question:
// keyword overlap, answer length relative to the question, and engagement
// phrases, weighted 0.5/0.35/0.15.
func calculateRelevance(question, answer string) float64 {
	if answer == "" || question == "" {
		return 0.0
	}

	questionKeywords := make(map[string]struct{})
	for _, t := range nlp.Tokenize(question) {
		if _, stop := questionStopWords[t]; stop || len(t) <= 2 {
			continue
		}
		questionKeywords[t] = struct{}{}
	}

	answerTokens := nlp.Tokenize(answer)
	answerSet := make(map[string]struct{}, len(answerTokens))
	for _, t := range answerTokens {
		answerSet[t] = struct{}{}
	}

	keywordOverlap := 0.5 // default when the question yields no clear keywords
	if len(questionKeywords) > 0 {
		matched := 0
		for kw := range questionKeywords {
			if _, ok := answerSet[kw]; ok {
				matched++
			}
		}
		keywordOverlap = float64(matched) / float64(len(questionKeywords))
	}

	boosterScore := math.Min(float64(countContained(strings.ToLower(answer), relevanceBoosters))*0.05, 0.15)

	answerWords := len(answerTokens)
	questionWords := len(nlp.Tokenize(question))

	lengthScore := 0.0
	switch {
	case answerWords >= questionWords*2:
		lengthScore = 1.0
	case answerWords >= questionWords:
		lengthScore = 0.8
	case float64(answerWords) >= float64(questionWords)*0.5:
		lengthScore = 0.6
	case answerWords > 0:
		lengthScore = 0.3
	}

	return math.Min(keywordOverlap*0.5+lengthScore*0.35+boosterScore, 1.0)
}

// calculateClarity measures how understandable the answer is: sentence
// length, examples, flow indicators, ambiguous language and list structure.
func calculateClarity(answer string) float64 {
	if answer == "" {
		return 0.0
	}

	lower := strings.ToLower(answer)
	score := 0.5 // baseline

	var sentences []string
	for _, s := range sentenceSplitRE.Split(answer, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) > 0 {
		totalWords := 0
		for _, s := range sentences {
			totalWords += len(strings.Fields(s))
		}
		avg := float64(totalWords) / float64(len(sentences))
		switch {
		case avg <= 15:
			score += 0.15
		case avg <= 25:
			score += 0.05
		case avg > 40:
			score -= 0.15
		}
	}

	if containsAny(lower, exampleIndicators) {
		score += 0.15
	}

	score += math.Min(float64(countContained(lower, flowIndicators))*0.03, 0.15)
	score -= math.Min(float64(countContained(lower, ambiguousMarkers))*0.05, 0.20)

	if bulletLineRE.MatchString(answer) || numberedLineRE.MatchString(answer) {
		score += 0.10
	}

	return clamp01(score)
}

// calculateDepth measures detail and comprehensiveness: vocabulary richness,
// concrete metrics and examples, nuance, multiple approaches and length.
func calculateDepth(answer string) float64 {
	if answer == "" {
		return 0.0
	}

	lower := strings.ToLower(answer)
	score := 0.3 // baseline

	tokens := nlp.Tokenize(answer)
	if len(tokens) > 0 {
		unique := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			unique[t] = struct{}{}
		}
		richness := float64(len(unique)) / float64(len(tokens))
		score += math.Min(richness*0.2, 0.15)
	}

	if metricsRE.MatchString(answer) {
		score += 0.15
	}

	score += math.Min(float64(countContained(lower, concreteIndicators))*0.08, 0.20)
	score += math.Min(float64(countContained(lower, nuanceIndicators))*0.05, 0.15)
	score += math.Min(float64(countContained(lower, approachIndicators))*0.06, 0.18)

	wordCount := len(tokens)
	switch {
	case wordCount >= 150:
		score += 0.10
	case wordCount >= 100:
		score += 0.08
	case wordCount >= 50:
		score += 0.05
	case wordCount < 20:
		score -= 0.20
	}

	return clamp01(score)
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// EvaluateAnswer evaluates an interview answer against its question. The
// question type is carried through for callers but does not change scoring.
func EvaluateAnswer(question, answer, questionType string) types.AnswerEvaluation {
	_ = questionType

	relevance := calculateRelevance(question, answer)
	clarity := calculateClarity(answer)
	depth := calculateDepth(answer)

	overall := relevance*relevanceWeight + depth*depthWeight + clarity*clarityWeight

	return types.AnswerEvaluation{
		RelevanceScore:      round3(relevance),
		ClarityScore:        round3(clarity),
		DepthScore:          round3(depth),
		OverallScore:        round3(overall),
		OverallScorePercent: int(overall * 100),
		Explanation:         buildEvaluationExplanation(relevance, clarity, depth),
		Strengths:           identifyStrengths(relevance, clarity, depth, answer),
		Weaknesses:          identifyWeaknesses(relevance, clarity, depth, answer),
		Suggestions:         generateSuggestions(relevance, clarity, depth, answer),
	}
}
