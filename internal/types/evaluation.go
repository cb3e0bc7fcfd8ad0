package types

// AnswerEvaluation is the structured result of evaluating one interview answer.
type AnswerEvaluation struct {
	RelevanceScore      float64  `json:"relevance_score"`
	ClarityScore        float64  `json:"clarity_score"`
	DepthScore          float64  `json:"depth_score"`
	OverallScore        float64  `json:"overall_score"`
	OverallScorePercent int      `json:"overall_score_percent"`
	Explanation         string   `json:"explanation"`
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	Suggestions         []string `json:"suggestions"`
}
