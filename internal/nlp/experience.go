package nlp

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// Job title keywords for the line-scan heuristic.
var titleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "director", "lead",
	"senior", "junior", "principal", "architect", "consultant", "specialist",
	"coordinator", "administrator", "officer", "assistant", "head", "chief",
}

var titleREs = []*regexp.Regexp{
	// Job titles like "Senior Software Engineer"
	regexp.MustCompile(`(?:Senior|Junior|Principal|Lead|Staff)?\s*(?:Software|Full.?Stack|Backend|Frontend|Data|ML|DevOps|Cloud)?\s*(?:Engineer|Developer|Manager|Architect|Analyst|Consultant)`),
	// Managerial roles
	regexp.MustCompile(`(?:Engineering|Technical|Product|Project)\s+Manager`),
	// Director/VP roles
	regexp.MustCompile(`(?:Director|VP)\s+(?:of\s+)?(?:Engineering|Technology|Product|Operations)`),
	// Other common titles
	regexp.MustCompile(`(?:Data|ML|AI)\s+Scientist`),
}

// Company names anchored on legal-entity or group suffixes.
var companyREs = []*regexp.Regexp{
	regexp.MustCompile(`[A-Z][A-Za-z\s]+(?:Inc|LLC|Corp|Ltd|Technologies|Solutions|Systems|Labs)`),
	regexp.MustCompile(`[A-Z][A-Za-z\s]+(?:Company|Group|Partners)`),
}

var durationREs = []*regexp.Regexp{
	// "January 2020 - Present" or "Jan 2020 - Present"
	regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\s*-\s*(?:Present|Current|\d{4})`),
	// "2020 - 2023" or "2020-Present"
	regexp.MustCompile(`(?i)\d{4}\s*-\s*(?:Present|Current|\d{4})`),
	// "3 years" or "2.5 years"
	regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s+years?`),
	// "6 months"
	regexp.MustCompile(`(?i)\d+\s+months?`),
}

var bulletREs = []*regexp.Regexp{
	regexp.MustCompile(`•\s*[^\n]+`),
	regexp.MustCompile(`-\s*[^\n]+`),
	regexp.MustCompile(`·\s*[^\n]+`),
	regexp.MustCompile(`✓\s*[^\n]+`),
}

var bulletPrefixRE = regexp.MustCompile(`^[•\-·✓]\s*`)

var (
	yearsMentionRE  = regexp.MustCompile(`(?i)(\d+)\s+years?`)
	monthsMentionRE = regexp.MustCompile(`(?i)(\d+)\s+months?`)
)

func extractJobTitles(text string) []string {
	var titles []string

	for _, re := range titleREs {
		titles = append(titles, re.FindAllString(text, -1)...)
	}

	// Line-scan heuristic: short lines containing a title keyword are
	// treated as title candidates.
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(strings.Fields(line)) > 5 {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range titleKeywords {
			if strings.Contains(lower, kw) {
				titles = append(titles, line)
				break
			}
		}
	}

	return dedupe(titles)
}

func extractCompanies(text string) []string {
	var companies []string
	for _, re := range companyREs {
		companies = append(companies, re.FindAllString(text, -1)...)
	}
	return dedupe(companies)
}

func extractDurations(text string) []string {
	var durations []string
	for _, re := range durationREs {
		durations = append(durations, re.FindAllString(text, -1)...)
	}
	return dedupe(durations)
}

func extractBullets(text string) []string {
	bullets := []string{}
	for _, re := range bulletREs {
		for _, m := range re.FindAllString(text, -1) {
			bullets = append(bullets, strings.TrimSpace(bulletPrefixRE.ReplaceAllString(m, "")))
		}
	}
	return bullets
}

// totalExperienceMonths sums every "N years" and "N months" mention found
// anywhere in the text. A duration described in more than one phrasing is
// counted each time; no timeline is reconstructed.
func totalExperienceMonths(text string) int {
	months := 0
	for _, m := range yearsMentionRE.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			months += n * 12
		}
	}
	for _, m := range monthsMentionRE.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			months += n
		}
	}
	return months
}

// ExtractExperience extracts work experience information from resume text.
// Titles, companies and durations are paired positionally up to the longest
// list; achievements are not distributed to specific entries.
func ExtractExperience(text string) types.Experience {
	titles := extractJobTitles(text)
	companies := extractCompanies(text)
	durations := extractDurations(text)
	achievements := extractBullets(text)

	maxLen := len(titles)
	if len(companies) > maxLen {
		maxLen = len(companies)
	}
	if len(durations) > maxLen {
		maxLen = len(durations)
	}

	entries := make([]types.ExperienceEntry, 0, maxLen)
	for i := 0; i < maxLen; i++ {
		entry := types.ExperienceEntry{Description: []string{}}
		if i < len(titles) {
			entry.Title = titles[i]
		}
		if i < len(companies) {
			entry.Company = companies[i]
		}
		if i < len(durations) {
			entry.Duration = durations[i]
		}
		entries = append(entries, entry)
	}

	totalMonths := totalExperienceMonths(text)
	totalYears := math.Round(float64(totalMonths)/12*10) / 10

	return types.Experience{
		JobTitles:           titles,
		Companies:           companies,
		Durations:           durations,
		Achievements:        achievements,
		TotalYearsEstimated: totalYears,
		Entries:             entries,
	}
}
