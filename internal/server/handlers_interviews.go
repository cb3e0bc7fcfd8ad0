package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/Seis05640/ai-voice-interviewer/internal/config"
	"github.com/Seis05640/ai-voice-interviewer/internal/evaluation"
	"github.com/Seis05640/ai-voice-interviewer/internal/interview"
	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// StartInterviewResponse is returned when a session is created.
type StartInterviewResponse struct {
	SessionID    string `json:"session_id"`
	Status       string `json:"status"`
	Question     string `json:"question"`
	QuestionNum  int    `json:"question_num"`
	MaxQuestions int    `json:"max_questions"`
}

// InterviewMessageResponse is returned after a candidate answer.
type InterviewMessageResponse struct {
	SessionID    string  `json:"session_id"`
	Status       string  `json:"status"`
	Question     string  `json:"question,omitempty"`
	QuestionNum  int     `json:"question_num,omitempty"`
	MaxQuestions int     `json:"max_questions"`
	SessionScore float64 `json:"session_score,omitempty"`
}

// handleStartInterview plans and persists a new interview session.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req types.StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.MaxQuestions == 0 {
		req.MaxQuestions = config.DefaultMaxQuestions
	}

	job, err := s.db.GetJob(r.Context(), req.JobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	cand, err := s.db.GetCandidate(r.Context(), req.CandidateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	engine := interview.NewEngine()
	state := engine.Start(job.Description, cand.ResumeText, req.MaxQuestions)

	if err := s.persistSession(r, state, req.JobID, req.CandidateID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	question, ok := state.CurrentQuestion()
	if !ok {
		question = ""
	} else if err := s.db.RecordMessage(r.Context(), uuid.MustParse(state.SessionID), "interviewer", question); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, StartInterviewResponse{
		SessionID:    state.SessionID,
		Status:       string(state.Status),
		Question:     question,
		QuestionNum:  state.NextTurnIndex + 1,
		MaxQuestions: state.MaxQuestions(),
	})
}

// handleInterviewMessage records a candidate answer and advances the session.
// Completing the final turn also writes the hiring report.
func (s *Server) handleInterviewMessage(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	var req types.InterviewMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	jobID, candidateID, raw, err := s.db.LoadSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	state, err := interview.SessionStateFromJSON(raw)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := state.SubmitAnswer(req.Content); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := s.db.RecordMessage(r.Context(), sessionID, "candidate", req.Content); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.persistSession(r, state, jobID, candidateID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := InterviewMessageResponse{
		SessionID:    state.SessionID,
		Status:       string(state.Status),
		MaxQuestions: state.MaxQuestions(),
	}

	if state.Status == interview.StatusCompleted {
		score := evaluation.SessionScore(state.Answers())
		summary := fmt.Sprintf("Interview completed with %d answered questions. Session score: %.2f.",
			len(state.Answers()), score)
		if _, err := s.db.UpsertReport(r.Context(), jobID, candidateID, score,
			evaluation.Recommendation(score), summary); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		resp.SessionScore = score
		s.jsonResponse(w, http.StatusOK, resp)
		return
	}

	question, ok := state.CurrentQuestion()
	if ok {
		if err := s.db.RecordMessage(r.Context(), sessionID, "interviewer", question); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		resp.Question = question
		resp.QuestionNum = state.NextTurnIndex + 1
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetInterview returns the persisted session state.
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	_, _, raw, err := s.db.LoadSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	state, err := interview.SessionStateFromJSON(raw)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, state)
}

// persistSession serializes and stores an interview session.
func (s *Server) persistSession(r *http.Request, state *interview.SessionState, jobID, candidateID uuid.UUID) error {
	raw, err := state.ToJSON()
	if err != nil {
		return err
	}
	id, err := uuid.Parse(state.SessionID)
	if err != nil {
		return err
	}
	return s.db.SaveSession(r.Context(), id, jobID, candidateID, string(state.Status), raw)
}
