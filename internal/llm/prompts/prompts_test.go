package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeInsightsEmbedsSchemaAndText(t *testing.T) {
	prompt := ResumeInsights("Jane Doe\nSenior Engineer at Acme")

	assert.Contains(t, prompt, `"work_experience"`)
	assert.Contains(t, prompt, `"employment_dates"`)
	assert.Contains(t, prompt, `"total_experience"`)
	assert.Contains(t, prompt, "Jane Doe")
	assert.True(t, strings.HasPrefix(prompt, "Analyze the following resume text"))
}

func TestJobDescriptionEmbedsText(t *testing.T) {
	prompt := JobDescription("We need a Go developer with 5 years of experience.")

	assert.Contains(t, prompt, "We need a Go developer")
	assert.Contains(t, prompt, "dynamically identify the main categories")
}

func TestQueryStructuringSystemSerializesStructure(t *testing.T) {
	structure := map[string]interface{}{
		"skills": map[string]interface{}{
			"technical_skills": []interface{}{},
		},
		"total_experience": "",
	}

	prompt := QueryStructuringSystem(structure)

	assert.Contains(t, prompt, `"technical_skills"`)
	assert.Contains(t, prompt, `"total_experience"`)
	assert.Contains(t, prompt, "only** the JSON object")
}

func TestQueryStructuringUserEmbedsQuery(t *testing.T) {
	prompt := QueryStructuringUser("python developers with 3 years experience")

	assert.Contains(t, prompt, "Query: python developers with 3 years experience")
}

func TestMatchItemEmbedsRequirementAndDetails(t *testing.T) {
	prompt := MatchItem("5+ years of Go", map[string]interface{}{
		"skills": []interface{}{"Go", "Python"},
	})

	assert.Contains(t, prompt, `"5+ years of Go"`)
	assert.Contains(t, prompt, "Go")
	assert.Contains(t, prompt, `"match_level"`)
	assert.Contains(t, prompt, `"evidence"`)
}
