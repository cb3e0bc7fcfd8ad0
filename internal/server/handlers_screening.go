package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Seis05640/ai-voice-interviewer/internal/db"
	"github.com/Seis05640/ai-voice-interviewer/internal/shortlist"
	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// shortlistThreshold is the keyword-overlap score at or above which a
// candidate is marked shortlisted during screening.
const shortlistThreshold = 0.15

// handleScreenJob screens every registered candidate against one job and
// persists the ranked results as applications.
func (s *Server) handleScreenJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	candidates, err := s.db.ListCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	scored, err := shortlist.ScreenCandidates(r.Context(), job.Description, candidates)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	results := []types.ScreeningResult{}
	for _, cs := range scored {
		status := db.ApplicationStatusRejected
		if cs.Score >= shortlistThreshold {
			status = db.ApplicationStatusShortlisted
		}
		res, err := s.db.UpsertApplication(r.Context(), jobID, cs.Candidate.ID, status, cs.Score, cs.Rationale)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		results = append(results, *res)
	}

	s.jsonResponse(w, http.StatusOK, results)
}

// handleListApplications lists persisted screening results for a job.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	results, err := s.db.ListApplicationsByJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, results)
}
