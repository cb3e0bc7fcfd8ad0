package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Seis05640/ai-voice-interviewer/internal/db"
	"github.com/Seis05640/ai-voice-interviewer/internal/interview"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "database not found",
			err:  db.ErrNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "wrapped database not found",
			err:  fmt.Errorf("load job: %w", db.ErrNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "resource not found",
			err:  &ErrResourceNotFound{Resource: "job", ID: "abc"},
			want: http.StatusNotFound,
		},
		{
			name: "validation",
			err:  &ErrValidation{Message: "title is required"},
			want: http.StatusBadRequest,
		},
		{
			name: "session state",
			err:  &ErrSessionState{Reason: "already completed"},
			want: http.StatusConflict,
		},
		{
			name: "invalid interview state",
			err:  &interview.InvalidStateError{Reason: "interview is not active"},
			want: http.StatusConflict,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "job not found: abc", (&ErrResourceNotFound{Resource: "job", ID: "abc"}).Error())
	assert.Equal(t, "validation error: bad input", (&ErrValidation{Message: "bad input"}).Error())
	assert.Equal(t, "session state error: completed", (&ErrSessionState{Reason: "completed"}).Error())
}
