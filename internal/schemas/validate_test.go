package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "score"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"score": {"type": "number", "minimum": 0, "maximum": 1}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "alice", "score": 0.7}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "", "score": 2}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	assert.Len(t, validationErr.Errors, 2)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONString_MissingRequired(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "alice"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Message, "score")
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString(`{not a schema`, `{"name": "alice"}`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "expected *SchemaLoadError, got %T", err)
}

func TestResolveSchemaPath(t *testing.T) {
	// Tests run from internal/schemas, so the repo schemas resolve two
	// levels up.
	path := ResolveSchemaPath(InterviewPlanSchema)
	require.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))

	assert.Empty(t, ResolveSchemaPath("schemas/no_such_schema.json"))
}

func TestValidateJSON_File(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{"name": "alice", "score": 0.5}`), 0o644))
	assert.NoError(t, ValidateJSON(schemaPath, docPath))

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"score": -1}`), 0o644))
	err := ValidateJSON(schemaPath, badPath)
	require.Error(t, err)
	_, ok := err.(*ValidationError)
	assert.True(t, ok)
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")

	err = ValidateJSON(filepath.Join(dir, "missing-schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestInterviewPlanSchema_AcceptsGeneratedPlans(t *testing.T) {
	schemaPath := ResolveSchemaPath(InterviewPlanSchema)
	require.NotEmpty(t, schemaPath)
	content, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONString(string(content), `["Tell me about yourself.", "Walk me through a project."]`))
	assert.Error(t, ValidateJSONString(string(content), `["ok", ""]`))
	assert.Error(t, ValidateJSONString(string(content), `{"questions": []}`))
}

func TestSessionStateSchema_AcceptsEngineOutput(t *testing.T) {
	schemaPath := ResolveSchemaPath(SessionStateSchema)
	require.NotEmpty(t, schemaPath)
	content, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	valid := `{
		"session_id": "3c2a0a48-4a58-4a4c-8c5e-000000000001",
		"status": "active",
		"turns": [{"question": "Tell me about yourself.", "answer": null}],
		"next_turn_index": 0,
		"started_at": "2025-01-02T15:04:05Z",
		"ended_at": null,
		"metadata": null
	}`
	assert.NoError(t, ValidateJSONString(string(content), valid))

	badStatus := `{
		"session_id": "3c2a0a48-4a58-4a4c-8c5e-000000000001",
		"status": "paused",
		"turns": [],
		"next_turn_index": 0,
		"started_at": "2025-01-02T15:04:05Z"
	}`
	assert.Error(t, ValidateJSONString(string(content), badStatus))
}
