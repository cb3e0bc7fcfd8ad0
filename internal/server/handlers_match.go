package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Seis05640/ai-voice-interviewer/internal/scoring"
)

// handleMatchScore computes the full weighted match score for one
// job/candidate pair.
func (s *Server) handleMatchScore(w http.ResponseWriter, r *http.Request) {
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

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	cand, err := s.db.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, scoring.CalculateMatchScore(job.Description, cand.ResumeText))
}
