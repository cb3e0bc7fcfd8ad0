package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Seis05640/ai-voice-interviewer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation and decoding paths reject requests before any database access,
// so these tests run against a server with no pool attached.

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func TestHandleHealth(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()

	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestHandleCreateJob_InvalidBody(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader("{not json"))

	s.handleCreateJob(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "Invalid request body")
}

func TestHandleCreateJob_MissingFields(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"title": "Backend Engineer"}`))

	s.handleCreateJob(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetJob_InvalidID(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")

	s.handleGetJob(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid job ID", decodeError(t, rec))
}

func TestHandleGetCandidate_InvalidID(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/candidates/xyz", nil)
	req.SetPathValue("id", "xyz")

	s.handleGetCandidate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInterviewMessage_EmptyContent(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interviews/abc/message", strings.NewReader(`{"content": ""}`))
	req.SetPathValue("id", "3c2a0a48-4a58-4a4c-8c5e-000000000001")

	s.handleInterviewMessage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEvaluateAnswer(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()
	body := `{
		"question": "Describe your experience with Go services.",
		"answer": "I built and operated Go services handling requests with 99.9% uptime. For example, I designed a queue-backed ingestion service because the upstream traffic was bursty."
	}`
	req := httptest.NewRequest(http.MethodPost, "/evaluations", strings.NewReader(body))

	s.handleEvaluateAnswer(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var eval types.AnswerEvaluation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&eval))
	assert.Greater(t, eval.OverallScore, 0.0)
	assert.GreaterOrEqual(t, eval.OverallScorePercent, 0)
	assert.LessOrEqual(t, eval.OverallScorePercent, 100)
	assert.NotEmpty(t, eval.Explanation)
}

func TestHandleEvaluateAnswer_MissingQuestion(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/evaluations", strings.NewReader(`{"answer": "something"}`))

	s.handleEvaluateAnswer(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetReport_InvalidIDs(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs/bad/candidates/bad/report", nil)
	req.SetPathValue("job_id", "bad")
	req.SetPathValue("candidate_id", "3c2a0a48-4a58-4a4c-8c5e-000000000001")

	s.handleGetReport(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid job ID", decodeError(t, rec))
}

func TestWithCORS(t *testing.T) {
	s := &Server{}
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/jobs", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
