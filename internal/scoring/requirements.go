// Package scoring combines extracted resume signals with requirements parsed
// from a job description into a weighted match score with a human-readable
// explanation.
package scoring

import (
	"regexp"
	"strconv"

	"github.com/Seis05640/ai-voice-interviewer/internal/nlp"
	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// Education level hierarchy; higher rank means higher level.
var levelRank = map[string]int{
	types.LevelUnknown:   0,
	types.LevelDiploma:   1,
	types.LevelAssociate: 2,
	types.LevelBachelor:  3,
	types.LevelMaster:    4,
	types.LevelDoctorate: 5,
}

// LevelRank returns the ordinal for an education level string. Unrecognized
// levels rank as unknown.
func LevelRank(level string) int {
	return levelRank[level]
}

var experienceYearREs = []*regexp.Regexp{
	// "3+ years of experience"
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s+)?experience`),
	// "3-5 years experience"; the upper bound wins
	regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*years?\s*(?:of\s+)?experience`),
}

var seniorityKeywords = []string{"junior", "mid", "senior", "lead", "principal", "architect"}

var seniorityREs = compileSeniorityREs()

func compileSeniorityREs() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(seniorityKeywords))
	for i, kw := range seniorityKeywords {
		res[i] = regexp.MustCompile(`(?i)\b` + kw + `\b`)
	}
	return res
}

// Education level requirement patterns, checked in descending seniority
// order; the first match wins.
var requiredLevelPatterns = []struct {
	level string
	re    *regexp.Regexp
}{
	{types.LevelDoctorate, regexp.MustCompile(`(?i)\b(?:phd|doctorate|doctor)\b\s*(?:degree)?`)},
	{types.LevelMaster, regexp.MustCompile(`(?i)\b(?:master['’]s?|m\.sc|m\.a|msc|ma)\b\s*(?:degree)?`)},
	{types.LevelBachelor, regexp.MustCompile(`(?i)\b(?:bachelor['’]s?|b\.sc|b\.a|bsc|ba)\b\s*(?:degree)?`)},
	{types.LevelAssociate, regexp.MustCompile(`(?i)\b(?:associate['’]s?)\b\s*(?:degree)?`)},
}

var requiredFieldKeywords = []string{
	"computer science", "data science", "software engineering",
	"information technology", "mathematics", "statistics",
	"business", "economics", "engineering",
}

var requiredFieldREs = compileRequiredFieldREs()

func compileRequiredFieldREs() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(requiredFieldKeywords))
	for i, kw := range requiredFieldKeywords {
		res[i] = regexp.MustCompile(`(?i)` + kw)
	}
	return res
}

// extractRequiredExperience derives the years and seniority levels a job
// description asks for. When several year figures appear, the maximum upper
// bound wins.
func extractRequiredExperience(jobDescription string) types.ExperienceRequirement {
	req := types.ExperienceRequirement{Levels: []string{}}

	for _, re := range experienceYearREs {
		for _, m := range re.FindAllStringSubmatch(jobDescription, -1) {
			// The last captured group is the upper bound for ranges.
			if n, err := strconv.Atoi(m[len(m)-1]); err == nil && n > req.Years {
				req.Years = n
			}
		}
	}

	for i, re := range seniorityREs {
		if re.MatchString(jobDescription) {
			req.Levels = append(req.Levels, seniorityKeywords[i])
		}
	}

	return req
}

// extractRequiredEducation derives the education level and fields of study a
// job description asks for.
func extractRequiredEducation(jobDescription string) types.EducationRequirement {
	req := types.EducationRequirement{Fields: []string{}}

	for _, lp := range requiredLevelPatterns {
		if lp.re.MatchString(jobDescription) {
			req.Level = lp.level
			break
		}
	}

	for i, re := range requiredFieldREs {
		if re.MatchString(jobDescription) {
			req.Fields = append(req.Fields, requiredFieldKeywords[i])
		}
	}

	return req
}

// ExtractJobRequirements parses all requirements the scorer compares a resume
// against out of the job description text.
func ExtractJobRequirements(jobDescription string) types.JobRequirements {
	return types.JobRequirements{
		Experience: extractRequiredExperience(jobDescription),
		Education:  extractRequiredEducation(jobDescription),
		Skills:     nlp.ExtractSkills(jobDescription).Technical,
	}
}
