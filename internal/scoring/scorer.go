package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Seis05640/ai-voice-interviewer/internal/nlp"
	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// Weights for the scoring components.
const (
	skillsMatchWeight     = 0.50
	experienceMatchWeight = 0.30
	educationMatchWeight  = 0.15
	keywordOverlapWeight  = 0.05
)

// Stop words excluded from the keyword-overlap component.
var overlapStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "as": {}, "is": {},
	"are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "have": {}, "has": {},
	"had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "must": {}, "can": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {},
	"we": {}, "they": {}, "my": {}, "your": {}, "our": {}, "their": {},
	"work": {}, "working": {}, "team": {}, "role": {}, "position": {}, "job": {},
	"candidate": {},
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// scoreSkillsMatch is the recall of required skills in the resume's skill
// set: |required ∩ resume| / |required|. Zero when either side is empty.
func scoreSkillsMatch(required, resumeSkills []string) float64 {
	if len(required) == 0 {
		return 0.0
	}

	requiredSet := lowerSet(required)
	resumeSet := lowerSet(resumeSkills)
	if len(resumeSet) == 0 {
		return 0.0
	}

	matched := 0
	for skill := range requiredSet {
		if _, ok := resumeSet[skill]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(requiredSet))
}

// scoreExperienceMatch buckets the resume's estimated years against the
// requirement, with a bonus when a required seniority keyword appears in the
// resume's job titles.
func scoreExperienceMatch(req types.ExperienceRequirement, exp types.Experience) float64 {
	resumeYears := exp.TotalYearsEstimated

	score := 0.0
	if req.Years > 0 {
		required := float64(req.Years)
		switch {
		case resumeYears >= required:
			score += 1.0
		case resumeYears >= required*0.75:
			score += 0.75
		case resumeYears >= required*0.5:
			score += 0.5
		case resumeYears > 0:
			score += 0.25
		}
	} else if resumeYears > 0 {
		// No explicit requirement; partial credit for having experience.
		score += 0.5
	}

	if len(req.Levels) > 0 {
		titles := strings.ToLower(strings.Join(exp.JobTitles, " "))
		for _, level := range req.Levels {
			if strings.Contains(titles, level) {
				score += 0.2
				break
			}
		}
	}

	return math.Min(score, 1.0)
}

// scoreEducationMatch compares education levels by ordinal, with a bonus when
// a required field of study appears in the resume's degree text.
func scoreEducationMatch(req types.EducationRequirement, edu types.Education) float64 {
	score := 0.0

	if req.Level != "" {
		requiredRank := LevelRank(req.Level)
		resumeRank := LevelRank(edu.EducationLevel)
		switch {
		case resumeRank >= requiredRank:
			score += 1.0
		case resumeRank >= requiredRank-1:
			score += 0.5
		}
	} else {
		switch edu.EducationLevel {
		case types.LevelBachelor, types.LevelMaster, types.LevelDoctorate:
			score += 0.5
		case types.LevelAssociate, types.LevelDiploma:
			score += 0.3
		}
	}

	if len(req.Fields) > 0 {
		degrees := strings.ToLower(strings.Join(edu.Degrees, " "))
		for _, field := range req.Fields {
			if strings.Contains(degrees, field) {
				score += 0.3
				break
			}
		}
	}

	return math.Min(score, 1.0)
}

// scoreKeywordOverlap computes a stop-word-filtered token frequency overlap:
// sum of min(jd count, resume count) over the total jd count.
func scoreKeywordOverlap(jobDescription, resumeText string) float64 {
	jdCounts := nlp.TokenCounts(jobDescription)
	resumeCounts := nlp.TokenCounts(resumeText)

	overlapSum := 0
	totalSum := 0
	for token, jdCount := range jdCounts {
		if _, stop := overlapStopWords[token]; stop || len(token) <= 2 {
			continue
		}
		totalSum += jdCount
		if resumeCount, ok := resumeCounts[token]; ok {
			if resumeCount < jdCount {
				overlapSum += resumeCount
			} else {
				overlapSum += jdCount
			}
		}
	}

	if totalSum == 0 {
		return 0.0
	}
	return float64(overlapSum) / float64(totalSum)
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// buildExplanation produces the human-readable rationale for a match score.
func buildExplanation(overall float64, requirements types.JobRequirements, resume types.ResumeData) string {
	parts := []string{fmt.Sprintf("Overall Match Score: %d%%", int(overall*100))}

	requiredSet := lowerSet(requirements.Skills)
	resumeSet := lowerSet(resume.Skills.Technical)

	matched := make(map[string]struct{})
	missing := make(map[string]struct{})
	for skill := range requiredSet {
		if _, ok := resumeSet[skill]; ok {
			matched[skill] = struct{}{}
		} else {
			missing[skill] = struct{}{}
		}
	}

	if len(matched) > 0 {
		parts = append(parts, "Matched skills: "+strings.Join(sortedKeys(matched), ", "))
	}
	if len(missing) > 0 {
		parts = append(parts, "Missing required skills: "+strings.Join(sortedKeys(missing), ", "))
	}

	reqYears := requirements.Experience.Years
	resumeYears := resume.Experience.TotalYearsEstimated
	if reqYears > 0 {
		if resumeYears >= float64(reqYears) {
			parts = append(parts, fmt.Sprintf("Meets experience requirement (%d+ years)", reqYears))
		} else {
			parts = append(parts, fmt.Sprintf("Has %g years experience (required: %d+)", resumeYears, reqYears))
		}
	}

	reqLevel := requirements.Education.Level
	resumeLevel := resume.Education.EducationLevel
	if reqLevel != "" {
		switch {
		case resumeLevel == reqLevel:
			parts = append(parts, fmt.Sprintf("Meets education requirement (%s degree)", reqLevel))
		case (resumeLevel == types.LevelMaster || resumeLevel == types.LevelDoctorate) && reqLevel == types.LevelBachelor:
			parts = append(parts, fmt.Sprintf("Exceeds education requirement (%s degree)", resumeLevel))
		case resumeLevel != types.LevelUnknown:
			parts = append(parts, fmt.Sprintf("Has %s degree (required: %s)", resumeLevel, reqLevel))
		default:
			parts = append(parts, fmt.Sprintf("Education level unclear (required: %s)", reqLevel))
		}
	}

	return strings.Join(parts, ". ")
}

// CalculateMatchScore scores a resume against a job description. It extracts
// skills, education and experience from the resume, derives requirements from
// the job description, and combines the component scores with fixed weights.
func CalculateMatchScore(jobDescription, resumeText string) types.MatchScore {
	resume := types.ResumeData{
		Skills:     nlp.ExtractSkills(resumeText),
		Education:  nlp.ExtractEducation(resumeText),
		Experience: nlp.ExtractExperience(resumeText),
	}

	requirements := ExtractJobRequirements(jobDescription)

	skillsMatch := scoreSkillsMatch(requirements.Skills, resume.Skills.Technical)
	experienceMatch := scoreExperienceMatch(requirements.Experience, resume.Experience)
	educationMatch := scoreEducationMatch(requirements.Education, resume.Education)
	keywordOverlap := scoreKeywordOverlap(jobDescription, resumeText)

	overall := skillsMatch*skillsMatchWeight +
		experienceMatch*experienceMatchWeight +
		educationMatch*educationMatchWeight +
		keywordOverlap*keywordOverlapWeight

	return types.MatchScore{
		OverallScore:        round3(overall),
		OverallScorePercent: int(overall * 100),
		ComponentScores: types.ComponentScores{
			SkillsMatch:     round3(skillsMatch),
			ExperienceMatch: round3(experienceMatch),
			EducationMatch:  round3(educationMatch),
			KeywordOverlap:  round3(keywordOverlap),
		},
		Explanation:     buildExplanation(overall, requirements, resume),
		ResumeData:      resume,
		JobRequirements: requirements,
	}
}
