package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentlens/internal/config"
	"talentlens/pkg/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Match.Concurrency = 4
	cfg.Match.RateLimit = 60000
	return cfg
}

func fullMatch(level string) MatchFunc {
	return func(ctx context.Context, item string) (*models.MatchOutcome, error) {
		return &models.MatchOutcome{MatchLevel: level, Reason: "test", Evidence: item}, nil
	}
}

func TestScoreAveragesAcrossTree(t *testing.T) {
	scorer := NewScorer(testConfig())

	parsedJD := map[string]interface{}{
		"Technical Skills": map[string]interface{}{
			"Languages":  []interface{}{"Go", "Python"},
			"Frameworks": []interface{}{"Echo"},
		},
		"Soft Skills": map[string]interface{}{
			"Communication": []interface{}{"Written communication"},
		},
	}

	match := func(ctx context.Context, item string) (*models.MatchOutcome, error) {
		if item == "Echo" {
			return &models.MatchOutcome{MatchLevel: models.MatchLevelNone}, nil
		}
		return &models.MatchOutcome{MatchLevel: models.MatchLevelFull}, nil
	}

	result, err := scorer.Score(context.Background(), parsedJD, match)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, result.OverallScore, 1e-9)
	assert.InDelta(t, 2.0/3.0, result.CategoryScores["Technical Skills"], 1e-9)
	assert.InDelta(t, 1.0, result.CategoryScores["Soft Skills"], 1e-9)

	outcome := result.Results["Technical Skills"]["Frameworks"]["Echo"]
	require.NotNil(t, outcome)
	assert.Equal(t, models.MatchLevelNone, outcome.MatchLevel)
}

func TestScoreRecordsErrorOutcomeOnMatchFailure(t *testing.T) {
	scorer := NewScorer(testConfig())

	parsedJD := map[string]interface{}{
		"Requirements": map[string]interface{}{
			"Experience": []interface{}{"10 years of COBOL"},
		},
	}

	match := func(ctx context.Context, item string) (*models.MatchOutcome, error) {
		return nil, errors.New("upstream unavailable")
	}

	result, err := scorer.Score(context.Background(), parsedJD, match)
	require.NoError(t, err)

	outcome := result.Results["Requirements"]["Experience"]["10 years of COBOL"]
	require.NotNil(t, outcome)
	assert.Equal(t, models.MatchLevelError, outcome.MatchLevel)
	assert.Contains(t, outcome.Reason, "upstream unavailable")
	assert.Equal(t, 0.0, result.OverallScore)
}

func TestScoreRejectsNonListItems(t *testing.T) {
	scorer := NewScorer(testConfig())

	parsedJD := map[string]interface{}{
		"Requirements": map[string]interface{}{
			"Experience": "not a list",
		},
	}

	_, err := scorer.Score(context.Background(), parsedJD, fullMatch(models.MatchLevelFull))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid items format in subcategory 'Experience'")
}

func TestScoreSkipsNonObjectCategory(t *testing.T) {
	scorer := NewScorer(testConfig())

	parsedJD := map[string]interface{}{
		"Job Title": "Senior Engineer",
		"Requirements": map[string]interface{}{
			"Skills": []interface{}{"Go"},
		},
	}

	result, err := scorer.Score(context.Background(), parsedJD, fullMatch(models.MatchLevelFull))
	require.NoError(t, err)

	assert.NotContains(t, result.Results, "Job Title")
	assert.InDelta(t, 1.0, result.OverallScore, 1e-9)
}

func TestScoreUnknownLevelScoresZero(t *testing.T) {
	scorer := NewScorer(testConfig())

	parsedJD := map[string]interface{}{
		"Requirements": map[string]interface{}{
			"Skills": []interface{}{"Go", "Python"},
		},
	}

	match := func(ctx context.Context, item string) (*models.MatchOutcome, error) {
		if item == "Go" {
			return &models.MatchOutcome{MatchLevel: "Maybe match"}, nil
		}
		return &models.MatchOutcome{MatchLevel: models.MatchLevelFull}, nil
	}

	result, err := scorer.Score(context.Background(), parsedJD, match)
	require.NoError(t, err)

	assert.Equal(t, "Maybe match", result.Results["Requirements"]["Skills"]["Go"].MatchLevel)
	assert.InDelta(t, 0.5, result.OverallScore, 1e-9)
}

// A zero-value match config must not deadlock the walk: unset concurrency
// and rate limit are clamped rather than taken literally.
func TestScoreZeroValueConfigCompletes(t *testing.T) {
	scorer := NewScorer(&config.Config{})

	parsedJD := map[string]interface{}{
		"Requirements": map[string]interface{}{
			"Skills": []interface{}{"Go", "Python", "Kubernetes"},
		},
	}

	result, err := scorer.Score(context.Background(), parsedJD, fullMatch(models.MatchLevelFull))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.OverallScore, 1e-9)
	assert.Len(t, result.Results["Requirements"]["Skills"], 3)
}

func TestScoreEmptyTree(t *testing.T) {
	scorer := NewScorer(testConfig())

	result, err := scorer.Score(context.Background(), map[string]interface{}{}, fullMatch(models.MatchLevelFull))
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.OverallScore)
	assert.Empty(t, result.CategoryScores)
}
