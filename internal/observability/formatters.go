// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// listPreview renders up to maxItemsToShow items as bullet lines.
func listPreview(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintResumeProfile outputs a human-readable summary of the extracted resume.
func (p *Printer) PrintResumeProfile(skills types.SkillSet, edu types.Education, exp types.Experience) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills found:     %d\n", skills.TotalCount))
	sb.WriteString(fmt.Sprintf("Education level:  %s\n", edu.EducationLevel))
	sb.WriteString(fmt.Sprintf("Years estimated:  %g\n", exp.TotalYearsEstimated))

	if len(skills.Technical) > 0 {
		sb.WriteString("\nTechnical skills:\n")
		listPreview(&sb, skills.Technical)
	}
	if len(exp.JobTitles) > 0 {
		sb.WriteString("\nJob titles:\n")
		listPreview(&sb, exp.JobTitles)
	}

	p.printBox("EXTRACTED RESUME PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchScore outputs the weighted match score with its components.
func (p *Printer) PrintMatchScore(score *types.MatchScore) {
	if score == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %d%%\n", score.OverallScorePercent))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:      %.3f\n", score.ComponentScores.SkillsMatch))
	sb.WriteString(fmt.Sprintf("Experience:  %.3f\n", score.ComponentScores.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Education:   %.3f\n", score.ComponentScores.EducationMatch))
	sb.WriteString(fmt.Sprintf("Keywords:    %.3f\n", score.ComponentScores.KeywordOverlap))

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterviewPlan outputs the planned question list for a session.
func (p *Printer) PrintInterviewPlan(questions []string) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}

	p.printBox(fmt.Sprintf("INTERVIEW PLAN (%d QUESTIONS)", len(questions)),
		strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnswerEvaluation outputs the per-criterion evaluation of one answer.
func (p *Printer) PrintAnswerEvaluation(eval *types.AnswerEvaluation) {
	if eval == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:    %d%%\n", eval.OverallScorePercent))
	sb.WriteString(fmt.Sprintf("Relevance:  %.3f\n", eval.RelevanceScore))
	sb.WriteString(fmt.Sprintf("Depth:      %.3f\n", eval.DepthScore))
	sb.WriteString(fmt.Sprintf("Clarity:    %.3f\n", eval.ClarityScore))

	if len(eval.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		listPreview(&sb, eval.Strengths)
	}
	if len(eval.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		listPreview(&sb, eval.Weaknesses)
	}

	p.printBox("ANSWER EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScreeningTable outputs one line per screened candidate, best first.
// Rows are assumed pre-sorted; equal scores keep their input order.
func (p *Printer) PrintScreeningTable(rows []ScreeningRow) {
	if len(rows) == 0 {
		return
	}

	sorted := make([]ScreeningRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	var sb strings.Builder
	for i, row := range sorted {
		sb.WriteString(fmt.Sprintf("%2d. %-24s %.3f\n", i+1, truncateName(row.Name, 24), row.Score))
	}

	p.printBox("SCREENING RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// ScreeningRow is one candidate line in the screening table.
type ScreeningRow struct {
	Name  string
	Score float64
}

func truncateName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return name[:max-3] + "..."
}
