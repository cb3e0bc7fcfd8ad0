package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngineWith(nil, func() string { return "test-session" })
}

func TestEngineStart(t *testing.T) {
	engine := newTestEngine()

	state := engine.Start(plannerJob, plannerResume, 4)

	assert.Equal(t, "test-session", state.SessionID)
	assert.Equal(t, StatusActive, state.Status)
	assert.Equal(t, 4, state.MaxQuestions())
	assert.Equal(t, 0, state.NextTurnIndex)
	assert.False(t, state.StartedAt.IsZero())
	assert.Nil(t, state.EndedAt)

	question, ok := state.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, introQuestion, question)
}

func TestSessionCompletionFlow(t *testing.T) {
	engine := newTestEngine()
	state := engine.Start(plannerJob, plannerResume, 4)

	answers := []string{"answer one", "answer two", "answer three", "answer four"}
	for i, a := range answers {
		question, ok := state.CurrentQuestion()
		require.True(t, ok, "turn %d should have a question", i)
		require.NotEmpty(t, question)
		require.NoError(t, state.SubmitAnswer(a))
	}

	assert.Equal(t, StatusCompleted, state.Status)
	require.NotNil(t, state.EndedAt)
	assert.Equal(t, answers, state.Answers())

	_, ok := state.CurrentQuestion()
	assert.False(t, ok)
}

func TestSubmitAnswer_AfterCompletion(t *testing.T) {
	engine := newTestEngine()
	state := engine.Start(plannerJob, "", 1)

	require.NoError(t, state.SubmitAnswer("only answer"))
	require.Equal(t, StatusCompleted, state.Status)

	err := state.SubmitAnswer("extra answer")
	var invalidState *InvalidStateError
	require.ErrorAs(t, err, &invalidState)

	// State is unchanged by the rejected submission.
	assert.Equal(t, StatusCompleted, state.Status)
	assert.Len(t, state.Answers(), 1)
}

func TestSubmitAnswer_EmptyAnswerAccepted(t *testing.T) {
	engine := newTestEngine()
	state := engine.Start(plannerJob, "", 2)

	require.NoError(t, state.SubmitAnswer(""))
	assert.Equal(t, []string{""}, state.Answers())
	assert.Equal(t, 1, state.NextTurnIndex)
}

func TestSession_JSONRoundTrip(t *testing.T) {
	engine := newTestEngine()
	state := engine.Start(plannerJob, plannerResume, 3)
	require.NoError(t, state.SubmitAnswer("first answer"))

	data, err := state.ToJSON()
	require.NoError(t, err)

	restored, err := SessionStateFromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, state.SessionID, restored.SessionID)
	assert.Equal(t, state.Status, restored.Status)
	assert.Equal(t, state.NextTurnIndex, restored.NextTurnIndex)
	assert.Equal(t, state.Answers(), restored.Answers())
	assert.NotNil(t, restored.Metadata)

	// The restored session continues where the original left off.
	question, ok := restored.CurrentQuestion()
	require.True(t, ok)
	expected, _ := state.CurrentQuestion()
	assert.Equal(t, expected, question)
}

func TestSessionStateFromJSON_Malformed(t *testing.T) {
	_, err := SessionStateFromJSON([]byte("{not json"))

	assert.Error(t, err)
}

func TestTranscriptIsCopy(t *testing.T) {
	engine := newTestEngine()
	state := engine.Start(plannerJob, "", 2)
	require.NoError(t, state.SubmitAnswer("one"))

	transcript := state.Transcript()
	require.Len(t, transcript, 2)
	transcript[0].Question = "mutated"

	fresh := state.Transcript()
	assert.NotEqual(t, "mutated", fresh[0].Question)
}

func TestEngineStart_Metadata(t *testing.T) {
	engine := newTestEngine()
	state := engine.Start(plannerJob, plannerResume, 3)

	assert.Equal(t, len(plannerJob), state.Metadata["job_description_chars"])
	assert.Equal(t, len(plannerResume), state.Metadata["resume_text_chars"])
}

func TestEngineStart_ZeroQuestions(t *testing.T) {
	engine := newTestEngine()
	state := engine.Start(plannerJob, plannerResume, 0)

	assert.Equal(t, 0, state.MaxQuestions())
	_, ok := state.CurrentQuestion()
	assert.False(t, ok)
}

func TestEngineAnswerHelper(t *testing.T) {
	engine := newTestEngine()
	state := engine.Start(plannerJob, "", 2)

	next, err := engine.Answer(state, "hello")
	require.NoError(t, err)
	assert.Equal(t, 1, next.NextTurnIndex)

	question, ok := engine.NextQuestion(next)
	assert.True(t, ok)
	assert.NotEmpty(t, question)
}
