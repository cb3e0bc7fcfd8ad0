package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanToJSON(t *testing.T) {
	out, err := PlanToJSON([]string{"q1", "q2"})
	require.NoError(t, err)
	assert.JSONEq(t, `["q1","q2"]`, out)
}

func TestPlanToJSON_Nil(t *testing.T) {
	out, err := PlanToJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestPlanFromJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"valid array", `["a","b"]`, []string{"a", "b"}},
		{"empty array", `[]`, []string{}},
		{"malformed", `{`, []string{}},
		{"not an array", `{"a":1}`, []string{}},
		{"plain string", `"hello"`, []string{}},
		{"non-string elements stringified", `["a", 2, true]`, []string{"a", "2", "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlanFromJSON(tt.input))
		})
	}
}

func TestPlanRoundTrip(t *testing.T) {
	plan := BuildInterviewPlanWithResume(plannerJob, plannerResume, 5)

	out, err := PlanToJSON(plan)
	require.NoError(t, err)
	assert.Equal(t, plan, PlanFromJSON(out))
}
