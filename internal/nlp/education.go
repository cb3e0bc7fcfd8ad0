package nlp

import (
	"regexp"
	"strings"

	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// Degree keywords used by the fallback pass. Ordered as listed.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "doctor", "mba", "associate",
	"b.sc", "m.sc", "b.a", "m.a", "bs", "ms", "ba", "ma", "diploma",
	"certificate", "certification",
}

// Field-of-study keywords. A fallback degree match is kept only when one of
// these appears within the 50-character window after the degree keyword.
var fieldKeywords = []string{
	"computer science", "data science", "software engineering", "information technology",
	"mathematics", "statistics", "physics", "chemistry", "biology",
	"business", "economics", "finance", "marketing", "management",
	"engineering", "electrical engineering", "mechanical engineering",
	"psychology", "sociology", "philosophy", "literature",
	"law", "medicine", "nursing", "education",
}

var degreeREs = []*regexp.Regexp{
	// "Bachelor of Science in Computer Science"
	regexp.MustCompile(`(?i)(?:Bachelor|Master|Doctor|PhD)\s+(?:of\s+)?(?:Science|Arts|Engineering|Business|Fine Arts)\s+(?:in\s+)?[^\n,]+`),
	// "B.Sc. Computer Science" or "MSc Data Science"
	regexp.MustCompile(`(?i)(?:B\.Sc|M\.Sc|B\.A|M\.A|BSc|MSc|BS|MS|BA|MA|MBA|PhD)\.?\s+(?:in\s+)?[^\n,]+`),
	// "Bachelor degree in..."
	regexp.MustCompile(`(?i)(?:Bachelor|Master|Doctorate)\s+degree\s+(?:in\s+)?[^\n,]+`),
}

// Institution patterns are case-sensitive on purpose; they anchor on the
// capitalized institution name or suffix.
var institutionREs = []*regexp.Regexp{
	regexp.MustCompile(`[A-Z][^\n]*?(?:University|College|Institute of Technology|Institute|Polytechnic)`),
	regexp.MustCompile(`University\s+(?:of|at)\s+[^\n,]+`),
	regexp.MustCompile(`School\s+of\s+[^\n,]+`),
}

var yearREs = []*regexp.Regexp{
	// Years 1900-2099
	regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
	// Year ranges like 2015-2019
	regexp.MustCompile(`\b(?:19|20)\d{2}\s*-\s*(?:19|20)?\d{2}\b`),
}

// fallbackDegreeREs pairs each degree keyword with a 50-character window.
var fallbackDegreeREs = compileFallbackDegreeREs()

func compileFallbackDegreeREs() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(degreeKeywords))
	for i, kw := range degreeKeywords {
		res[i] = regexp.MustCompile(`(?i)\b` + kw + `\b[^\n]{0,50}`)
	}
	return res
}

func extractDegrees(text string) []string {
	var degrees []string

	for _, re := range degreeREs {
		degrees = append(degrees, re.FindAllString(text, -1)...)
	}

	// Fallback: degree keyword followed by a recognized field of study
	// within the trailing window.
	for _, re := range fallbackDegreeREs {
		for _, m := range re.FindAllString(text, -1) {
			lower := strings.ToLower(m)
			for _, field := range fieldKeywords {
				if strings.Contains(lower, field) {
					degrees = append(degrees, strings.TrimSpace(m))
					break
				}
			}
		}
	}

	return dedupe(degrees)
}

func extractInstitutions(text string) []string {
	var institutions []string
	for _, re := range institutionREs {
		institutions = append(institutions, re.FindAllString(text, -1)...)
	}
	return dedupe(institutions)
}

func extractYears(text string) []string {
	var years []string
	for _, re := range yearREs {
		years = append(years, re.FindAllString(text, -1)...)
	}
	return dedupe(years)
}

// guessFieldOfStudy returns the first field keyword contained in the degree
// string, or empty if none.
func guessFieldOfStudy(degree string) string {
	lower := strings.ToLower(degree)
	for _, field := range fieldKeywords {
		if strings.Contains(lower, field) {
			return field
		}
	}
	return ""
}

// determineEducationLevel derives the highest education level present in the
// degree strings, checked in descending seniority order.
func determineEducationLevel(degrees []string) string {
	if len(degrees) == 0 {
		return types.LevelUnknown
	}

	joined := strings.ToLower(strings.Join(degrees, " "))

	containsAny := func(keywords ...string) bool {
		for _, kw := range keywords {
			if strings.Contains(joined, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("phd", "doctor", "doctorate"):
		return types.LevelDoctorate
	case containsAny("master", "m.sc", "m.s", "m.a", "mba"):
		return types.LevelMaster
	case containsAny("bachelor", "b.sc", "b.s", "b.a"):
		return types.LevelBachelor
	case containsAny("associate"):
		return types.LevelAssociate
	case containsAny("diploma", "certificate"):
		return types.LevelDiploma
	default:
		return types.LevelUnknown
	}
}

// ExtractEducation extracts education information from resume text.
// Entries are formed by zipping degrees, institutions and years positionally;
// the association is a heuristic approximation, not guaranteed correct.
func ExtractEducation(text string) types.Education {
	degrees := extractDegrees(text)
	institutions := extractInstitutions(text)
	years := extractYears(text)

	entries := make([]types.EducationEntry, 0, len(degrees))
	for i, degree := range degrees {
		entry := types.EducationEntry{
			Degree: degree,
			Field:  guessFieldOfStudy(degree),
		}
		if i < len(institutions) {
			entry.Institution = institutions[i]
		}
		if i < len(years) {
			entry.Year = years[i]
		}
		entries = append(entries, entry)
	}

	return types.Education{
		Degrees:        degrees,
		Institutions:   institutions,
		Years:          years,
		Entries:        entries,
		EducationLevel: determineEducationLevel(degrees),
	}
}
