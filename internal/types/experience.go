package types

// ExperienceEntry pairs a job title with a company and duration. Like
// EducationEntry, the pairing is positional and heuristic.
type ExperienceEntry struct {
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Description []string `json:"description"`
}

// Experience represents the work experience extracted from resume text.
// TotalYearsEstimated is the sum of every explicit "N years"/"N months"
// mention found anywhere in the text; durations described in more than one
// phrasing are counted more than once.
type Experience struct {
	JobTitles           []string          `json:"job_titles"`
	Companies           []string          `json:"companies"`
	Durations           []string          `json:"durations"`
	Achievements        []string          `json:"achievements"`
	TotalYearsEstimated float64           `json:"total_years_estimated"`
	Entries             []ExperienceEntry `json:"entries"`
}
