package evaluation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleQuestion = "Tell me about a project where you used Python."

const strongAnswer = `In my previous role I worked on a data pipeline written in Python.
Specifically, we implemented a batch ingestion system that processed
around 2.5 million records per day. First, I designed the schema.
Second, I built the workers. Third, I added monitoring. However, there
was a trade-off between throughput and cost, so for example we tuned
the batch size until we cut processing time by 40%. The project involved
close collaboration with the data science team over 2 years.`

func TestEvaluateAnswer_EmptyAnswer(t *testing.T) {
	eval := EvaluateAnswer(sampleQuestion, "", "")

	assert.Equal(t, 0.0, eval.RelevanceScore)
	assert.Equal(t, 0.0, eval.ClarityScore)
	assert.Equal(t, 0.0, eval.DepthScore)
	assert.Equal(t, 0.0, eval.OverallScore)
	assert.Equal(t, 0, eval.OverallScorePercent)
	assert.NotEmpty(t, eval.Explanation)
	assert.NotEmpty(t, eval.Weaknesses)
}

func TestEvaluateAnswer_EmptyQuestion(t *testing.T) {
	eval := EvaluateAnswer("", "A detailed answer about many things.", "")

	assert.Equal(t, 0.0, eval.RelevanceScore)
}

func TestEvaluateAnswer_StrongAnswer(t *testing.T) {
	eval := EvaluateAnswer(sampleQuestion, strongAnswer, "technical")

	assert.Greater(t, eval.RelevanceScore, 0.5)
	assert.Greater(t, eval.DepthScore, 0.6)
	assert.Greater(t, eval.ClarityScore, 0.5)
	assert.Greater(t, eval.OverallScore, 0.5)
	assert.NotEmpty(t, eval.Strengths)
}

func TestEvaluateAnswer_WeakBeatenByStrong(t *testing.T) {
	weak := EvaluateAnswer(sampleQuestion, "I guess I kind of used it once.", "")
	strong := EvaluateAnswer(sampleQuestion, strongAnswer, "")

	assert.Less(t, weak.OverallScore, strong.OverallScore)
}

func TestEvaluateAnswer_QuestionTypeIgnored(t *testing.T) {
	a := EvaluateAnswer(sampleQuestion, strongAnswer, "technical")
	b := EvaluateAnswer(sampleQuestion, strongAnswer, "behavioral")

	assert.Equal(t, a.OverallScore, b.OverallScore)
}

func TestEvaluateAnswer_WeightedOverall(t *testing.T) {
	eval := EvaluateAnswer(sampleQuestion, strongAnswer, "")

	expected := round3(eval.RelevanceScore*0.50 + eval.DepthScore*0.30 + eval.ClarityScore*0.20)
	assert.InDelta(t, expected, eval.OverallScore, 0.002)
}

func TestCalculateRelevance_KeywordOverlap(t *testing.T) {
	// Answer repeating the question keywords scores higher than an
	// unrelated one.
	onTopic := calculateRelevance(sampleQuestion, "The project used Python throughout.")
	offTopic := calculateRelevance(sampleQuestion, "My favorite food is pasta with cheese.")

	assert.Greater(t, onTopic, offTopic)
}

func TestCalculateClarity_AmbiguousPenalty(t *testing.T) {
	clear := calculateClarity("I led the migration. It took three months. We shipped on time.")
	hedged := calculateClarity("I kind of maybe led it, sort of, not sure, I guess, um, you know.")

	assert.Greater(t, clear, hedged)
}

func TestCalculateClarity_StructureBonus(t *testing.T) {
	flat := calculateClarity("We did planning and testing and shipping")
	structured := calculateClarity("We did:\n- planning\n- testing\n- shipping")

	assert.Greater(t, structured, flat)
}

func TestCalculateDepth_MetricsBonus(t *testing.T) {
	without := calculateDepth("We improved the system performance significantly last quarter")
	with := calculateDepth("We improved the system performance by 40% last quarter overall")

	assert.Greater(t, with, without)
}

func TestCalculateDepth_ShortPenalty(t *testing.T) {
	short := calculateDepth("Yes.")

	assert.Less(t, short, 0.5)
}

func TestBuildEvaluationExplanation_Thresholds(t *testing.T) {
	high := buildEvaluationExplanation(0.9, 0.9, 0.9)
	assert.Contains(t, high, "directly addresses the question")
	assert.Contains(t, high, "clear and well-structured")
	assert.Contains(t, high, "strong subject knowledge")

	low := buildEvaluationExplanation(0.1, 0.1, 0.1)
	assert.Contains(t, low, "does not adequately address")
	assert.Contains(t, low, "significant improvement")
	assert.Contains(t, low, "lacks sufficient detail")
}

func TestIdentifyStrengths_Fallback(t *testing.T) {
	strengths := identifyStrengths(0.1, 0.1, 0.1, "meh")

	assert.Equal(t, []string{"Answered the question"}, strengths)
}

func TestIdentifyWeaknesses_Fallback(t *testing.T) {
	answer := strings.Repeat("word ", 35) +
		"for example this and such as that, however on the other hand."
	weaknesses := identifyWeaknesses(0.9, 0.9, 0.9, answer)

	assert.Equal(t, []string{"Minor areas for improvement exist"}, weaknesses)
}

func TestGenerateSuggestions_Fallback(t *testing.T) {
	answer := strings.Repeat("word ", 55) +
		"for example, however there is a trade-off."
	suggestions := generateSuggestions(0.9, 0.9, 0.9, answer)

	assert.Equal(t, []string{"Continue with this approach"}, suggestions)
}

func TestGenerateSuggestions_ShortAnswer(t *testing.T) {
	suggestions := generateSuggestions(0.9, 0.9, 0.9, "short answer")

	assert.Contains(t, suggestions, "Expand on your answer with more detail")
}
