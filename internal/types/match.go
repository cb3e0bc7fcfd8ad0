package types

// ExperienceRequirement represents the experience demanded by a job description.
type ExperienceRequirement struct {
	Years  int      `json:"years"`
	Levels []string `json:"levels"`
}

// EducationRequirement represents the education demanded by a job description.
// Level is empty when the posting states no explicit requirement.
type EducationRequirement struct {
	Level  string   `json:"level,omitempty"`
	Fields []string `json:"fields"`
}

// JobRequirements collects everything derived from a job description that the
// scorer compares a resume against.
type JobRequirements struct {
	Experience ExperienceRequirement `json:"experience"`
	Education  EducationRequirement  `json:"education"`
	Skills     []string              `json:"skills"`
}

// ComponentScores holds the individual match score components, each in [0, 1].
type ComponentScores struct {
	SkillsMatch     float64 `json:"skills_match"`
	ExperienceMatch float64 `json:"experience_match"`
	EducationMatch  float64 `json:"education_match"`
	KeywordOverlap  float64 `json:"keyword_overlap"`
}

// ResumeData bundles the extraction results for one resume.
type ResumeData struct {
	Skills     SkillSet   `json:"skills"`
	Education  Education  `json:"education"`
	Experience Experience `json:"experience"`
}

// MatchScore is the full result of scoring a resume against a job description.
type MatchScore struct {
	OverallScore        float64         `json:"overall_score"`
	OverallScorePercent int             `json:"overall_score_percent"`
	ComponentScores     ComponentScores `json:"component_scores"`
	Explanation         string          `json:"explanation"`
	ResumeData          ResumeData      `json:"resume_data"`
	JobRequirements     JobRequirements `json:"job_requirements"`
}
