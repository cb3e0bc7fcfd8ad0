// Package interview provides the deterministic interview-question planner and
// the finite-state session that tracks turn progression.
package interview

import (
	"fmt"
	"sort"

	"github.com/Seis05640/ai-voice-interviewer/internal/nlp"
)

// Fixed question texts used by both planner variants.
const (
	introQuestion      = "Briefly introduce yourself and summarize your relevant experience."
	behavioralQuestion = "Describe a challenging problem you solved and how you approached it."
	closingQuestion    = "Do you have any questions for us?"
)

// fallbackQuestions fill remaining plan slots when the keyword pools are
// exhausted.
var fallbackQuestions = []string{
	"What attracted you to this role?",
	"How do you keep your technical skills up to date?",
	"Tell me about a time you had to learn something new quickly.",
}

// plannerStopWords are excluded from keyword selection.
var plannerStopWords = map[string]struct{}{
	"the": {}, "and": {}, "to": {}, "of": {}, "a": {}, "in": {}, "for": {},
	"with": {}, "on": {}, "is": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"or": {}, "an": {},
}

// highlightMaxChars bounds the quoted resume snippet in the highlight
// question.
const highlightMaxChars = 140

// topKeywordLimit bounds the frequent-token pool for the resume-aware
// planner.
const topKeywordLimit = 25

// BuildInterviewPlan generates an ordered question list from job-description
// keywords alone. The plan opens with an introduction, asks one project
// question per keyword in text order, and closes with a challenge question
// and an invitation for candidate questions, truncated to maxQuestions.
func BuildInterviewPlan(jobDescription string, maxQuestions int) []string {
	if maxQuestions <= 0 {
		return []string{}
	}

	var keywords []string
	seen := make(map[string]struct{})
	for _, t := range nlp.Tokenize(jobDescription) {
		if _, stop := plannerStopWords[t]; stop || len(t) < 3 {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		keywords = append(keywords, t)
		if len(keywords) >= maxQuestions-2 {
			break
		}
	}

	questions := []string{introQuestion}
	for _, kw := range keywords {
		questions = append(questions, fmt.Sprintf("Tell me about a project where you used %s.", kw))
	}
	questions = append(questions, behavioralQuestion, closingQuestion)

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

// BuildInterviewPlanWithResume generates an ordered question list tailored to
// a specific resume. The plan always opens with an introduction and, when
// room allows, ends with a behavioral question followed by a closing
// question. The middle slots are filled with a resume highlight question,
// then alternating matched-skill and skill-gap questions, then fixed
// fallbacks.
func BuildInterviewPlanWithResume(jobDescription, resumeText string, maxQuestions int) []string {
	if maxQuestions <= 0 {
		return []string{}
	}
	if resumeText == "" {
		return BuildInterviewPlan(jobDescription, maxQuestions)
	}

	questions := []string{introQuestion}

	tail := []string{}
	if maxQuestions >= 3 {
		tail = append(tail, behavioralQuestion)
	}
	if maxQuestions >= 2 {
		tail = append(tail, closingQuestion)
	}

	slots := maxQuestions - len(questions) - len(tail)
	middle := buildMiddleQuestions(jobDescription, resumeText, slots)
	questions = append(questions, middle...)
	questions = append(questions, tail...)

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

func buildMiddleQuestions(jobDescription, resumeText string, slots int) []string {
	if slots <= 0 {
		return nil
	}

	var middle []string

	if highlight, ok := highlightQuestion(resumeText); ok {
		middle = append(middle, highlight)
	}

	matched, gaps := matchedAndGapTerms(jobDescription, resumeText)
	asked := make(map[string]struct{})
	for i := 0; i < len(matched) || i < len(gaps); i++ {
		if i < len(matched) {
			if _, dup := asked[matched[i]]; !dup {
				asked[matched[i]] = struct{}{}
				middle = append(middle, fmt.Sprintf("Tell me about a project where you used %s.", matched[i]))
			}
		}
		if i < len(gaps) {
			if _, dup := asked[gaps[i]]; !dup {
				asked[gaps[i]] = struct{}{}
				middle = append(middle, fmt.Sprintf(
					"This role calls for %s, which I don't see on your resume. How would you approach getting up to speed?", gaps[i]))
			}
		}
		if len(middle) >= slots {
			break
		}
	}

	middle = append(middle, fallbackQuestions...)

	if len(middle) > slots {
		middle = middle[:slots]
	}
	return middle
}

// highlightQuestion quotes the candidate's first achievement bullet, or first
// job title when no achievements were extracted.
func highlightQuestion(resumeText string) (string, bool) {
	exp := nlp.ExtractExperience(resumeText)

	snippet := ""
	if len(exp.Achievements) > 0 {
		snippet = exp.Achievements[0]
	} else if len(exp.JobTitles) > 0 {
		snippet = exp.JobTitles[0]
	}
	if snippet == "" {
		return "", false
	}

	if runes := []rune(snippet); len(runes) > highlightMaxChars {
		snippet = string(runes[:highlightMaxChars]) + "..."
	}

	return fmt.Sprintf("On your resume you mention: '%s'. Can you walk me through it in more detail?", snippet), true
}

// matchedAndGapTerms splits the job's required terms into those present on
// the resume and those absent, each ranked by descending frequency in the
// job description with alphabetical tie-breaking.
func matchedAndGapTerms(jobDescription, resumeText string) (matched, gaps []string) {
	jdFreq := make(map[string]int)
	for _, t := range nlp.Tokenize(jobDescription) {
		if _, stop := plannerStopWords[t]; stop || len(t) < 3 {
			continue
		}
		jdFreq[t]++
	}

	topTokens := make([]string, 0, len(jdFreq))
	for t := range jdFreq {
		topTokens = append(topTokens, t)
	}
	sort.Slice(topTokens, func(i, j int) bool {
		if jdFreq[topTokens[i]] != jdFreq[topTokens[j]] {
			return jdFreq[topTokens[i]] > jdFreq[topTokens[j]]
		}
		return topTokens[i] < topTokens[j]
	})
	if len(topTokens) > topKeywordLimit {
		topTokens = topTokens[:topKeywordLimit]
	}

	jdSkills := nlp.ExtractSkills(jobDescription)

	required := make(map[string]struct{})
	for _, s := range jdSkills.Technical {
		required[s] = struct{}{}
	}
	for _, s := range jdSkills.Soft {
		required[s] = struct{}{}
	}
	for _, t := range topTokens {
		required[t] = struct{}{}
	}

	resumeTerms := make(map[string]struct{})
	for _, t := range nlp.Tokenize(resumeText) {
		resumeTerms[t] = struct{}{}
	}
	resumeSkills := nlp.ExtractSkills(resumeText)
	for _, s := range resumeSkills.Technical {
		resumeTerms[s] = struct{}{}
	}
	for _, s := range resumeSkills.Soft {
		resumeTerms[s] = struct{}{}
	}

	for term := range required {
		if _, ok := resumeTerms[term]; ok {
			matched = append(matched, term)
		} else {
			gaps = append(gaps, term)
		}
	}

	rank := func(terms []string) {
		sort.Slice(terms, func(i, j int) bool {
			if jdFreq[terms[i]] != jdFreq[terms[j]] {
				return jdFreq[terms[i]] > jdFreq[terms[j]]
			}
			return terms[i] < terms[j]
		})
	}
	rank(matched)
	rank(gaps)

	return matched, gaps
}
