package nlp

import (
	"regexp"
	"strings"

	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// Word-boundary regexes for the vocabularies and the version/certification
// patterns, compiled once at package init.
var (
	techSkillREs = compileKeywordREs(commonTechSkills)
	softSkillREs = compileKeywordREs(softSkills)
	patternREs   = compilePatternREs(skillPatterns)
)

func compileKeywordREs(vocab []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(vocab))
	for i, skill := range vocab {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return res
}

func compilePatternREs(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(`(?i)` + p)
	}
	return res
}

// findKeywordSkills matches each vocabulary entry as a whole word or phrase
// against the lowercased text, preserving vocabulary order.
func findKeywordSkills(textLower string, vocab []string, res []*regexp.Regexp) []string {
	var found []string
	for i, re := range res {
		if re.MatchString(textLower) {
			found = append(found, vocab[i])
		}
	}
	return found
}

// findPatternSkills applies the version/certification patterns and returns
// the lowercased matched mentions.
func findPatternSkills(text string) []string {
	var found []string
	for _, re := range patternREs {
		for _, m := range re.FindAllString(text, -1) {
			found = append(found, strings.ToLower(m))
		}
	}
	return found
}

// ExtractSkills extracts technical and soft skills from free text.
// Keyword matches come first in vocabulary order, then pattern matches not
// already present are appended to the technical list.
func ExtractSkills(text string) types.SkillSet {
	textLower := strings.ToLower(text)

	tech := findKeywordSkills(textLower, commonTechSkills, techSkillREs)
	soft := findKeywordSkills(textLower, softSkills, softSkillREs)

	for _, s := range findPatternSkills(text) {
		tech = append(tech, s)
	}

	tech = dedupe(tech)
	soft = dedupe(soft)

	return types.SkillSet{
		Technical:  tech,
		Soft:       soft,
		TotalCount: len(tech) + len(soft),
	}
}
