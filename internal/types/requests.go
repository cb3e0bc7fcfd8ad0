package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateJobRequest represents the request to register a job posting.
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
}

// CreateCandidateRequest represents the request to register a candidate.
type CreateCandidateRequest struct {
	Name       string `json:"name" validate:"required,min=1"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	ResumeText string `json:"resume_text" validate:"required,min=1"`
}

// StartInterviewRequest represents the request to start an interview session.
type StartInterviewRequest struct {
	JobID        uuid.UUID `json:"job_id" validate:"required"`
	CandidateID  uuid.UUID `json:"candidate_id" validate:"required"`
	MaxQuestions int       `json:"max_questions,omitempty" validate:"omitempty,min=1,max=20"`
}

// InterviewMessageRequest represents a candidate answer posted to a session.
type InterviewMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// EvaluateAnswerRequest represents a standalone answer evaluation request.
type EvaluateAnswerRequest struct {
	Question     string `json:"question" validate:"required"`
	Answer       string `json:"answer"`
	QuestionType string `json:"question_type,omitempty"`
}

// Job represents a job posting for API responses.
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Candidate represents a candidate for API responses.
type Candidate struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	ResumeText string    `json:"resume_text"`
	CreatedAt  time.Time `json:"created_at"`
}

// ScreeningResult is one ranked row from screening a job against a candidate.
type ScreeningResult struct {
	ApplicationID uuid.UUID `json:"application_id"`
	CandidateID   uuid.UUID `json:"candidate_id"`
	JobID         uuid.UUID `json:"job_id"`
	Score         float64   `json:"score"`
	Rationale     string    `json:"rationale"`
	Status        string    `json:"status"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateCandidateRequest using the validator.
func (r *CreateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the StartInterviewRequest using the validator.
func (r *StartInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the InterviewMessageRequest using the validator.
func (r *InterviewMessageRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EvaluateAnswerRequest using the validator.
func (r *EvaluateAnswerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
