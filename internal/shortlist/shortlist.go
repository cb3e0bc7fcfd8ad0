// Package shortlist provides the baseline token-overlap screening used to
// rank candidates against a job before any interview takes place.
package shortlist

import (
	"sort"
	"strings"

	"github.com/Seis05640/ai-voice-interviewer/internal/nlp"
)

// TokenOverlapScore is a baseline score in [0, 1] based on unique-token
// overlap between a job description and a resume.
func TokenOverlapScore(jobDescription, resumeText string) float64 {
	jd := tokenSet(jobDescription)
	cv := tokenSet(resumeText)
	if len(jd) == 0 {
		return 0.0
	}

	shared := 0
	for t := range jd {
		if _, ok := cv[t]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(jd))
}

// TopOverlapTerms returns up to topN job-description terms that also appear
// in the resume, ordered by descending frequency in the job description with
// alphabetical tie-breaking.
func TopOverlapTerms(jobDescription, resumeText string, topN int) []string {
	counts := nlp.TokenCounts(jobDescription)
	cv := tokenSet(resumeText)

	terms := make([]string, 0, len(counts))
	for t := range counts {
		if _, ok := cv[t]; ok {
			terms = append(terms, t)
		}
	}

	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > topN {
		terms = terms[:topN]
	}
	return terms
}

// Rationale produces a short human-readable justification for an overlap
// score.
func Rationale(jobDescription, resumeText string) string {
	terms := TopOverlapTerms(jobDescription, resumeText, 8)
	if len(terms) == 0 {
		return "Low keyword overlap between resume and job description."
	}
	return "Matched terms: " + strings.Join(terms, ", ")
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range nlp.Tokenize(text) {
		set[t] = struct{}{}
	}
	return set
}
