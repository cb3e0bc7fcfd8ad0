package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plannerJob = "Python FastAPI AWS"

const plannerResume = `Senior Software Engineer
• Built a FastAPI service handling 10k requests per second
Skills: Python, PostgreSQL`

func TestBuildInterviewPlan_ZeroQuestions(t *testing.T) {
	assert.Equal(t, []string{}, BuildInterviewPlan(plannerJob, 0))
	assert.Equal(t, []string{}, BuildInterviewPlan(plannerJob, -1))
}

func TestBuildInterviewPlan_StartsWithIntro(t *testing.T) {
	plan := BuildInterviewPlan(plannerJob, 5)

	require.NotEmpty(t, plan)
	assert.Equal(t, introQuestion, plan[0])
}

func TestBuildInterviewPlan_RespectsLimit(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 10} {
		plan := BuildInterviewPlan(plannerJob, n)
		assert.LessOrEqual(t, len(plan), n)
	}
}

func TestBuildInterviewPlan_KeywordQuestions(t *testing.T) {
	plan := BuildInterviewPlan(plannerJob, 6)

	joined := strings.Join(plan, "\n")
	assert.Contains(t, joined, "Tell me about a project where you used python.")
	assert.Contains(t, joined, "fastapi")
}

func TestBuildInterviewPlan_EmptyJobDescription(t *testing.T) {
	plan := BuildInterviewPlan("", 5)

	// Intro plus the two fixed tail questions; no keywords available.
	assert.Equal(t, []string{introQuestion, behavioralQuestion, closingQuestion}, plan)
}

func TestBuildInterviewPlan_Deterministic(t *testing.T) {
	assert.Equal(t, BuildInterviewPlan(plannerJob, 5), BuildInterviewPlan(plannerJob, 5))
}

func TestBuildInterviewPlanWithResume_EmptyResumeDelegates(t *testing.T) {
	assert.Equal(t,
		BuildInterviewPlan(plannerJob, 5),
		BuildInterviewPlanWithResume(plannerJob, "", 5))
}

func TestBuildInterviewPlanWithResume_Shape(t *testing.T) {
	plan := BuildInterviewPlanWithResume(plannerJob, plannerResume, 4)

	require.Len(t, plan, 4)
	assert.Equal(t, introQuestion, plan[0])
	assert.True(t, strings.HasPrefix(plan[1], "On your resume you mention: '"), plan[1])
	assert.Equal(t, behavioralQuestion, plan[2])
	assert.Equal(t, closingQuestion, plan[3])
}

func TestBuildInterviewPlanWithResume_TwoQuestions(t *testing.T) {
	plan := BuildInterviewPlanWithResume(plannerJob, plannerResume, 2)

	require.Len(t, plan, 2)
	assert.Equal(t, introQuestion, plan[0])
	assert.Equal(t, closingQuestion, plan[1])
}

func TestBuildInterviewPlanWithResume_OneQuestion(t *testing.T) {
	plan := BuildInterviewPlanWithResume(plannerJob, plannerResume, 1)

	assert.Equal(t, []string{introQuestion}, plan)
}

func TestBuildInterviewPlanWithResume_GapQuestion(t *testing.T) {
	// AWS is required by the job but missing from the resume.
	plan := BuildInterviewPlanWithResume(plannerJob, plannerResume, 8)

	joined := strings.Join(plan, "\n")
	assert.Contains(t, joined, "This role calls for aws, which I don't see on your resume.")
}

func TestBuildInterviewPlanWithResume_MatchedQuestion(t *testing.T) {
	plan := BuildInterviewPlanWithResume(plannerJob, plannerResume, 8)

	joined := strings.Join(plan, "\n")
	assert.Contains(t, joined, "Tell me about a project where you used python.")
}

func TestBuildInterviewPlanWithResume_Deterministic(t *testing.T) {
	first := BuildInterviewPlanWithResume(plannerJob, plannerResume, 8)
	second := BuildInterviewPlanWithResume(plannerJob, plannerResume, 8)

	assert.Equal(t, first, second)
}

func TestHighlightQuestion_TruncatesLongSnippet(t *testing.T) {
	resume := "• " + strings.Repeat("achievement ", 30)

	q, ok := highlightQuestion(resume)

	require.True(t, ok)
	assert.Contains(t, q, "...")
	assert.LessOrEqual(t, len(q), len("On your resume you mention: ''. Can you walk me through it in more detail?")+highlightMaxChars+3)
}

func TestHighlightQuestion_NoMaterial(t *testing.T) {
	_, ok := highlightQuestion("plain text with nothing extractable")

	assert.False(t, ok)
}

func TestMatchedAndGapTerms(t *testing.T) {
	matched, gaps := matchedAndGapTerms("python aws python", "I know python well")

	assert.Contains(t, matched, "python")
	assert.Contains(t, gaps, "aws")
	// python appears twice in the jd so it outranks everything else.
	require.NotEmpty(t, matched)
	assert.Equal(t, "python", matched[0])
}
