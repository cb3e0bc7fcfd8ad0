package interview

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status is the lifecycle state of an interview session.
type Status string

// Session lifecycle states. Completed is terminal.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// InvalidStateError indicates an answer was submitted to a session that
// cannot accept one. The session is left unchanged.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid session state: %s", e.Reason)
}

// Turn is one question/answer pair within a session. Answer is nil until the
// candidate has answered.
type Turn struct {
	Question string  `json:"question"`
	Answer   *string `json:"answer"`
}

// SessionState tracks turn-by-turn interview progression. All turns are
// pre-populated with questions at session start; mutation happens only
// through SubmitAnswer. The state is owned by exactly one caller; concurrent
// mutation must be serialized externally.
type SessionState struct {
	SessionID     string         `json:"session_id"`
	Status        Status         `json:"status"`
	Turns         []Turn         `json:"turns"`
	NextTurnIndex int            `json:"next_turn_index"`
	StartedAt     time.Time      `json:"started_at"`
	EndedAt       *time.Time     `json:"ended_at"`
	Metadata      map[string]any `json:"metadata"`
}

// MaxQuestions returns the number of planned turns.
func (s *SessionState) MaxQuestions() int {
	return len(s.Turns)
}

// CurrentQuestion returns the question at the turn pointer. The second
// return value is false when the session is not active or no turns remain;
// that is not an error condition.
func (s *SessionState) CurrentQuestion() (string, bool) {
	if s.Status != StatusActive {
		return "", false
	}
	if s.NextTurnIndex >= len(s.Turns) {
		return "", false
	}
	return s.Turns[s.NextTurnIndex].Question, true
}

// SubmitAnswer records an answer for the current turn and advances the turn
// pointer. When the pointer reaches the end of the plan the session flips to
// completed and records the end timestamp.
func (s *SessionState) SubmitAnswer(answer string) error {
	if s.Status != StatusActive {
		return &InvalidStateError{Reason: "interview is not active"}
	}
	if s.NextTurnIndex >= len(s.Turns) {
		return &InvalidStateError{Reason: "no remaining questions"}
	}

	s.Turns[s.NextTurnIndex].Answer = &answer
	s.NextTurnIndex++

	if s.NextTurnIndex >= len(s.Turns) {
		s.Status = StatusCompleted
		now := time.Now().UTC()
		s.EndedAt = &now
	}
	return nil
}

// Transcript returns the ordered question/answer pairs.
func (s *SessionState) Transcript() []Turn {
	out := make([]Turn, len(s.Turns))
	copy(out, s.Turns)
	return out
}

// Answers returns the submitted answers in turn order, skipping unanswered
// turns.
func (s *SessionState) Answers() []string {
	answers := make([]string, 0, len(s.Turns))
	for _, t := range s.Turns {
		if t.Answer != nil {
			answers = append(answers, *t.Answer)
		}
	}
	return answers
}

// ToJSON serializes the full session state, including timestamps and
// metadata, for round-trip persistence.
func (s *SessionState) ToJSON() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session state: %w", err)
	}
	return data, nil
}

// SessionStateFromJSON restores a session state serialized with ToJSON.
func SessionStateFromJSON(data []byte) (*SessionState, error) {
	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	if state.Metadata == nil {
		state.Metadata = map[string]any{}
	}
	return &state, nil
}
