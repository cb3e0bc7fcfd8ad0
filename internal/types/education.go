package types

// Education level values, ordered from lowest to highest. The scorer compares
// them by ordinal; see scoring.LevelRank.
const (
	LevelUnknown   = "unknown"
	LevelDiploma   = "diploma"
	LevelAssociate = "associate"
	LevelBachelor  = "bachelor"
	LevelMaster    = "master"
	LevelDoctorate = "doctorate"
)

// EducationEntry pairs a degree with an institution and year. The pairing is
// positional (degrees[i] with institutions[i] and years[i]) and is a
// best-effort heuristic, not a guaranteed semantic association.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Education represents the education information extracted from resume text.
type Education struct {
	Degrees        []string         `json:"degrees"`
	Institutions   []string         `json:"institutions"`
	Years          []string         `json:"years"`
	Entries        []EducationEntry `json:"entries"`
	EducationLevel string           `json:"education_level"`
}
