package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Seis05640/ai-voice-interviewer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintResumeProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := types.SkillSet{
		Technical:  []string{"python", "go", "aws", "docker", "kubernetes", "terraform", "redis"},
		TotalCount: 7,
	}
	edu := types.Education{EducationLevel: "master"}
	exp := types.Experience{
		JobTitles:           []string{"Software Engineer"},
		TotalYearsEstimated: 5.5,
	}

	p.PrintResumeProfile(skills, edu, exp)
	out := buf.String()

	assert.Contains(t, out, "EXTRACTED RESUME PROFILE")
	assert.Contains(t, out, "Skills found:     7")
	assert.Contains(t, out, "Education level:  master")
	assert.Contains(t, out, "Years estimated:  5.5")
	assert.Contains(t, out, "• python")
	assert.Contains(t, out, "• Software Engineer")
	// Only the first five skills are listed.
	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "• redis")
}

func TestPrintMatchScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchScore(&types.MatchScore{
		OverallScore:        0.835,
		OverallScorePercent: 83,
		ComponentScores: types.ComponentScores{
			SkillsMatch:     0.75,
			ExperienceMatch: 1.0,
			EducationMatch:  0.8,
			KeywordOverlap:  0.333,
		},
	})
	out := buf.String()

	assert.Contains(t, out, "MATCH SCORE")
	assert.Contains(t, out, "Overall:     83%")
	assert.Contains(t, out, "Skills:      0.750")
	assert.Contains(t, out, "Keywords:    0.333")

	buf.Reset()
	p.PrintMatchScore(nil)
	assert.Empty(t, buf.String())
}

func TestPrintInterviewPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintInterviewPlan([]string{
		"Tell me about yourself.",
		"Describe a recent project.",
	})
	out := buf.String()

	assert.Contains(t, out, "INTERVIEW PLAN (2 QUESTIONS)")
	assert.Contains(t, out, "1. Tell me about yourself.")
	assert.Contains(t, out, "2. Describe a recent project.")

	buf.Reset()
	p.PrintInterviewPlan(nil)
	assert.Empty(t, buf.String())
}

func TestPrintAnswerEvaluation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnswerEvaluation(&types.AnswerEvaluation{
		OverallScorePercent: 72,
		RelevanceScore:      0.8,
		DepthScore:          0.6,
		ClarityScore:        0.7,
		Strengths:           []string{"Directly addresses the question"},
		Weaknesses:          []string{"Could include more detail"},
	})
	out := buf.String()

	assert.Contains(t, out, "ANSWER EVALUATION")
	assert.Contains(t, out, "Overall:    72%")
	assert.Contains(t, out, "Strengths:")
	assert.Contains(t, out, "• Directly addresses the question")
	assert.Contains(t, out, "Weaknesses:")

	buf.Reset()
	p.PrintAnswerEvaluation(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScreeningTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScreeningTable([]ScreeningRow{
		{Name: "candidate_b.txt", Score: 0.4},
		{Name: "candidate_a.txt", Score: 0.9},
		{Name: strings.Repeat("x", 40) + ".txt", Score: 0.1},
	})
	out := buf.String()

	assert.Contains(t, out, "SCREENING RESULTS")
	// Best candidate first.
	aIdx := strings.Index(out, "candidate_a.txt")
	bIdx := strings.Index(out, "candidate_b.txt")
	assert.Less(t, aIdx, bIdx)
	// Long names are truncated with an ellipsis.
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, strings.Repeat("x", 40))

	buf.Reset()
	p.PrintScreeningTable(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("z", 100))
	out := buf.String()

	assert.Contains(t, out, "TITLE")
	assert.NotContains(t, out, strings.Repeat("z", boxWidth))
	assert.Contains(t, out, "...")
}
