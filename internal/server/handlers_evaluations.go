package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Seis05640/ai-voice-interviewer/internal/evaluation"
	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// handleEvaluateAnswer evaluates a standalone question/answer pair.
func (s *Server) handleEvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := evaluation.EvaluateAnswer(req.Question, req.Answer, req.QuestionType)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetReport fetches the persisted hiring report for a job/candidate pair.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("job_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}
	candidateID, err := uuid.Parse(r.PathValue("candidate_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	rep, err := s.db.GetReportByPair(r.Context(), jobID, candidateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, rep)
}
