package evaluation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerQualityScore_Empty(t *testing.T) {
	assert.Equal(t, 0.0, AnswerQualityScore("", nil))
	assert.Equal(t, 0.0, AnswerQualityScore("   ", nil))
}

func TestAnswerQualityScore_LengthGrows(t *testing.T) {
	short := AnswerQualityScore("yes", nil)
	long := AnswerQualityScore(strings.Repeat("detailed answer content ", 30), nil)

	assert.Greater(t, long, short)
	assert.Less(t, long, 1.0)
}

func TestAnswerQualityScore_ExpectedTerms(t *testing.T) {
	answer := "I have used Python and Docker extensively."

	allHit := AnswerQualityScore(answer, []string{"python", "docker"})
	noneHit := AnswerQualityScore(answer, []string{"rust", "kubernetes"})

	assert.Greater(t, allHit, noneHit)
}

func TestAnswerQualityScore_TermsCaseInsensitive(t *testing.T) {
	a := AnswerQualityScore("I used PYTHON daily.", []string{"Python"})
	b := AnswerQualityScore("I used python daily.", []string{"python"})

	assert.Equal(t, a, b)
}

func TestSessionScore(t *testing.T) {
	assert.Equal(t, 0.0, SessionScore(nil))
	assert.Equal(t, 0.0, SessionScore([]string{}))

	answers := []string{
		strings.Repeat("a full answer with plenty of words ", 10),
		strings.Repeat("another substantial answer here ", 10),
	}
	score := SessionScore(answers)
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestRecommendation(t *testing.T) {
	assert.Equal(t, "hire", Recommendation(0.6))
	assert.Equal(t, "hire", Recommendation(0.9))
	assert.Equal(t, "no_hire", Recommendation(0.59))
	assert.Equal(t, "no_hire", Recommendation(0.0))
}
