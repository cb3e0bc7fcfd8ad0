package interview

import (
	"time"

	"github.com/google/uuid"
)

// PlannerFunc builds an ordered question list for a job description and
// optional resume.
type PlannerFunc func(jobDescription, resumeText string, maxQuestions int) []string

// Engine is a small, deterministic text-interview engine: it asks one
// question at a time, tracks state and stores answers in the session.
type Engine struct {
	planner   PlannerFunc
	sessionID func() string
}

// NewEngine creates an engine with the default resume-aware planner and
// random session identifiers.
func NewEngine() *Engine {
	return &Engine{
		planner:   BuildInterviewPlanWithResume,
		sessionID: uuid.NewString,
	}
}

// NewEngineWith creates an engine with a custom planner and session id
// factory. Nil arguments fall back to the defaults.
func NewEngineWith(planner PlannerFunc, sessionID func() string) *Engine {
	e := NewEngine()
	if planner != nil {
		e.planner = planner
	}
	if sessionID != nil {
		e.sessionID = sessionID
	}
	return e
}

// Start plans the interview and returns a fresh active session with every
// turn pre-populated with its question.
func (e *Engine) Start(jobDescription, resumeText string, maxQuestions int) *SessionState {
	questions := e.planner(jobDescription, resumeText, maxQuestions)

	turns := make([]Turn, len(questions))
	for i, q := range questions {
		turns[i] = Turn{Question: q}
	}

	return &SessionState{
		SessionID: e.sessionID(),
		Status:    StatusActive,
		Turns:     turns,
		StartedAt: time.Now().UTC(),
		Metadata: map[string]any{
			"job_description_chars": len(jobDescription),
			"resume_text_chars":     len(resumeText),
		},
	}
}

// NextQuestion returns the current question, or false when the session is
// finished or has no remaining turns.
func (e *Engine) NextQuestion(state *SessionState) (string, bool) {
	return state.CurrentQuestion()
}

// Answer submits an answer to the current turn and returns the mutated state.
func (e *Engine) Answer(state *SessionState, answer string) (*SessionState, error) {
	if err := state.SubmitAnswer(answer); err != nil {
		return state, err
	}
	return state, nil
}
