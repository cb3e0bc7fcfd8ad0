package evaluation

import (
	"fmt"
	"strings"

	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

const reportRuleWidth = 70

// Report bundles one question/answer pair with its evaluation for rendering.
type Report struct {
	Question     string                 `json:"question"`
	Answer       string                 `json:"answer"`
	QuestionType string                 `json:"question_type"`
	Evaluation   types.AnswerEvaluation `json:"evaluation"`
}

// NewReport evaluates an answer and wraps the result in a Report.
func NewReport(question, answer, questionType string) *Report {
	if questionType == "" {
		questionType = "general"
	}
	return &Report{
		Question:     question,
		Answer:       answer,
		QuestionType: questionType,
		Evaluation:   EvaluateAnswer(question, answer, questionType),
	}
}

// FormatText renders the report as plain text.
func (r *Report) FormatText() string {
	heavy := strings.Repeat("=", reportRuleWidth)
	light := strings.Repeat("-", reportRuleWidth)

	var sb strings.Builder
	writeLines := func(lines ...string) {
		for _, line := range lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	writeLines(
		heavy,
		"INTERVIEW ANSWER EVALUATION REPORT",
		heavy,
		"",
		"QUESTION:",
		light,
		r.Question,
		"",
		"ANSWER:",
		light,
		r.Answer,
		"",
		"EVALUATION SCORES:",
		light,
		fmt.Sprintf("Overall Score: %d/100", r.Evaluation.OverallScorePercent),
		"",
		fmt.Sprintf("  Relevance:  %.2f (weight: 50%%)", r.Evaluation.RelevanceScore),
		fmt.Sprintf("  Depth:      %.2f (weight: 30%%)", r.Evaluation.DepthScore),
		fmt.Sprintf("  Clarity:    %.2f (weight: 20%%)", r.Evaluation.ClarityScore),
		"",
		"EVALUATION SUMMARY:",
		light,
		r.Evaluation.Explanation,
		"",
		"STRENGTHS:",
		light,
	)

	for i, s := range r.Evaluation.Strengths {
		writeLines(fmt.Sprintf("  %d. %s", i+1, s))
	}

	writeLines("", "AREAS FOR IMPROVEMENT:", light)
	for i, w := range r.Evaluation.Weaknesses {
		writeLines(fmt.Sprintf("  %d. %s", i+1, w))
	}

	writeLines("", "SUGGESTIONS:", light)
	for i, s := range r.Evaluation.Suggestions {
		writeLines(fmt.Sprintf("  %d. %s", i+1, s))
	}

	writeLines("", heavy, "END OF REPORT")
	sb.WriteString(heavy)
	return sb.String()
}

// FormatMarkdown renders the report as Markdown.
func (r *Report) FormatMarkdown() string {
	var sb strings.Builder
	writeLines := func(lines ...string) {
		for _, line := range lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	writeLines(
		"# Interview Answer Evaluation Report",
		"",
		"## Question",
		r.Question,
		"",
		"## Answer",
		r.Answer,
		"",
		"## Evaluation Scores",
		"",
		fmt.Sprintf("**Overall Score:** %d/100", r.Evaluation.OverallScorePercent),
		"",
		"| Criteria | Score | Weight |",
		"|----------|-------|--------|",
		fmt.Sprintf("| Relevance | %.2f | 50%% |", r.Evaluation.RelevanceScore),
		fmt.Sprintf("| Depth | %.2f | 30%% |", r.Evaluation.DepthScore),
		fmt.Sprintf("| Clarity | %.2f | 20%% |", r.Evaluation.ClarityScore),
		"",
		"## Evaluation Summary",
		"",
		r.Evaluation.Explanation,
		"",
		"## Strengths",
		"",
	)

	for _, s := range r.Evaluation.Strengths {
		writeLines("- " + s)
	}

	writeLines("", "## Areas for Improvement", "")
	for _, w := range r.Evaluation.Weaknesses {
		writeLines("- " + w)
	}

	writeLines("", "## Suggestions", "")
	for _, s := range r.Evaluation.Suggestions {
		writeLines("- " + s)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
