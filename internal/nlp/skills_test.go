package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_Technical(t *testing.T) {
	text := "Experienced with Python, Django and PostgreSQL. Deployed on AWS with Docker."

	skills := ExtractSkills(text)

	assert.Contains(t, skills.Technical, "python")
	assert.Contains(t, skills.Technical, "django")
	assert.Contains(t, skills.Technical, "postgresql")
	assert.Contains(t, skills.Technical, "aws")
	assert.Contains(t, skills.Technical, "docker")
	assert.Equal(t, len(skills.Technical)+len(skills.Soft), skills.TotalCount)
}

func TestExtractSkills_Soft(t *testing.T) {
	text := "Strong leadership and communication skills, experienced in mentoring."

	skills := ExtractSkills(text)

	assert.Contains(t, skills.Soft, "leadership")
	assert.Contains(t, skills.Soft, "communication")
	assert.Contains(t, skills.Soft, "mentoring")
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	skills := ExtractSkills("PYTHON and Kubernetes")

	assert.Contains(t, skills.Technical, "python")
	assert.Contains(t, skills.Technical, "kubernetes")
}

func TestExtractSkills_WholeWordOnly(t *testing.T) {
	// "r" must not match inside other words.
	skills := ExtractSkills("delivered projects rapidly")

	assert.NotContains(t, skills.Technical, "r")
	assert.NotContains(t, skills.Technical, "go")
}

func TestExtractSkills_VersionPatterns(t *testing.T) {
	skills := ExtractSkills("Worked with Python 3.8 and React 18")

	assert.Contains(t, skills.Technical, "python 3.8")
	assert.Contains(t, skills.Technical, "react 18")
}

func TestExtractSkills_Certifications(t *testing.T) {
	skills := ExtractSkills("AWS Certified engineer and Scrum Master")

	assert.Contains(t, skills.Technical, "aws certified")
	assert.Contains(t, skills.Technical, "scrum master")
}

func TestExtractSkills_Empty(t *testing.T) {
	skills := ExtractSkills("")

	assert.Empty(t, skills.Technical)
	assert.Empty(t, skills.Soft)
	assert.Equal(t, 0, skills.TotalCount)
}

func TestExtractSkills_NoDuplicates(t *testing.T) {
	skills := ExtractSkills("python python python")

	count := 0
	for _, s := range skills.Technical {
		if s == "python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSkills_DeterministicOrder(t *testing.T) {
	text := "docker aws python"

	first := ExtractSkills(text)
	second := ExtractSkills(text)

	assert.Equal(t, first.Technical, second.Technical)
	// Vocabulary order, not text order.
	assert.Equal(t, []string{"python", "aws", "docker"}, first.Technical)
}
