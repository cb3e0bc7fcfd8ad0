// Package nlp provides regex and keyword based extraction of structured
// signals (skills, education, experience) from free-text resumes and job
// descriptions. All functions are pure and never fail on arbitrary input.
package nlp

import (
	"regexp"
	"strings"
)

var wordRE = regexp.MustCompile(`[a-zA-Z0-9]+`)

// Tokenize splits text into an ordered sequence of lowercase alphanumeric
// tokens. Empty input yields an empty slice. No stemming is applied and
// duplicates are preserved.
func Tokenize(text string) []string {
	matches := wordRE.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.ToLower(m))
	}
	return tokens
}

// TokenCounts returns the frequency of each token in text.
func TokenCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, t := range Tokenize(text) {
		counts[t]++
	}
	return counts
}

// dedupe removes duplicates from a list while preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
