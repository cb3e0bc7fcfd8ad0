package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Seis05640/ai-voice-interviewer/internal/nlp"
	"github.com/Seis05640/ai-voice-interviewer/internal/types"
)

// CandidateProfile is the extracted NLP view of a candidate's resume.
type CandidateProfile struct {
	CandidateID uuid.UUID        `json:"candidate_id"`
	Skills      types.SkillSet   `json:"skills"`
	Education   types.Education  `json:"education"`
	Experience  types.Experience `json:"experience"`
}

// handleCreateCandidate registers a new candidate.
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	cand, err := s.db.CreateCandidate(r.Context(), req.Name, req.Email, req.ResumeText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, cand)
}

// handleListCandidates lists all candidates.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.db.ListCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}

// handleGetCandidate fetches one candidate.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	cand, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, cand)
}

// handleGetCandidateProfile runs the resume extractors over a candidate's
// stored resume text.
func (s *Server) handleGetCandidateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	cand, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, CandidateProfile{
		CandidateID: cand.ID,
		Skills:      nlp.ExtractSkills(cand.ResumeText),
		Education:   nlp.ExtractEducation(cand.ResumeText),
		Experience:  nlp.ExtractExperience(cand.ResumeText),
	})
}
