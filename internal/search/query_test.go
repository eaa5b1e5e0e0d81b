package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClauses(t *testing.T, query map[string]interface{}) []interface{} {
	t.Helper()
	boolQuery := query["query"].(map[string]interface{})["bool"].(map[string]interface{})
	clauses, ok := boolQuery["must"].([]interface{})
	require.True(t, ok)
	return clauses
}

func TestBuildQuerySkillsAndExperience(t *testing.T) {
	parsed := map[string]interface{}{
		"skills": map[string]interface{}{
			"technical_skills": []interface{}{"Go", "Kubernetes"},
			"soft_skills":      []interface{}{"Leadership"},
		},
		"total_experience": float64(5),
	}

	clauses := mustClauses(t, BuildQuery(parsed))
	require.Len(t, clauses, 4)

	assert.Equal(t, map[string]interface{}{
		"match": map[string]interface{}{"skills.technical_skills": "Go"},
	}, clauses[0])
	assert.Equal(t, map[string]interface{}{
		"match": map[string]interface{}{"skills.soft_skills": "Leadership"},
	}, clauses[2])
	assert.Equal(t, map[string]interface{}{
		"range": map[string]interface{}{
			"total_experience": map[string]interface{}{"gte": float64(5)},
		},
	}, clauses[3])
}

func TestBuildQueryEmptyInput(t *testing.T) {
	clauses := mustClauses(t, BuildQuery(map[string]interface{}{}))
	assert.Empty(t, clauses)
}

func TestBuildQueryIgnoresMalformedSkills(t *testing.T) {
	parsed := map[string]interface{}{
		"skills": map[string]interface{}{
			"technical_skills": "Go",
		},
	}

	clauses := mustClauses(t, BuildQuery(parsed))
	assert.Empty(t, clauses)
}

func TestBuildQueryExperienceOnly(t *testing.T) {
	clauses := mustClauses(t, BuildQuery(map[string]interface{}{
		"total_experience": "3",
	}))

	require.Len(t, clauses, 1)
	assert.Equal(t, map[string]interface{}{
		"range": map[string]interface{}{
			"total_experience": map[string]interface{}{"gte": "3"},
		},
	}, clauses[0])
}
