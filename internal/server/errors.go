package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Seis05640/ai-voice-interviewer/internal/db"
	"github.com/Seis05640/ai-voice-interviewer/internal/interview"
)

// ErrResourceNotFound indicates a requested resource does not exist
type ErrResourceNotFound struct {
	Resource string
	ID       string
}

func (e *ErrResourceNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ErrSessionState indicates an interview session operation in the wrong state
type ErrSessionState struct {
	Reason string
}

func (e *ErrSessionState) Error() string {
	return fmt.Sprintf("session state error: %s", e.Reason)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var invalidState *interview.InvalidStateError
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &invalidState):
		return http.StatusConflict
	}

	switch err.(type) {
	case *ErrResourceNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrSessionState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
