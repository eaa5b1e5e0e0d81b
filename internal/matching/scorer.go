// Package matching walks a parsed job description's category tree and scores
// every requirement against a resume, fanning individual comparisons out to
// the LLM under a concurrency cap and a shared rate limit.
package matching

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"talentlens/internal/config"
	"talentlens/internal/logging"
	"talentlens/pkg/models"
	"talentlens/pkg/utils"
)

// MatchFunc evaluates one requirement item and returns its outcome. The
// scorer supplies the item text; callers close over the resume details and
// the LLM call.
type MatchFunc func(ctx context.Context, item string) (*models.MatchOutcome, error)

// Result holds the full matching outcome for one job description.
type Result struct {
	// Results mirrors the input tree: category -> subcategory -> item.
	Results map[string]map[string]map[string]*models.MatchOutcome
	// CategoryScores averages item scores per top-level category. Categories
	// whose subcategories yielded no items are omitted.
	CategoryScores map[string]float64
	// OverallScore averages across every scored item, 0 when none scored.
	OverallScore float64
}

// Scorer orchestrates concurrent requirement matching.
type Scorer struct {
	concurrency int
	limiter     *rate.Limiter
	logger      logging.Logger
}

// NewScorer builds a scorer from the match configuration. RateLimit is
// expressed as LLM calls per minute. Zero or negative values are clamped:
// concurrency to 1, rate limit to unlimited. A literal zero would otherwise
// make Score block forever (errgroup.SetLimit(0) admits no goroutines and
// rate.Limit(0) never grants a token).
func NewScorer(cfg *config.Config) *Scorer {
	concurrency := cfg.Match.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	perSecond := rate.Limit(float64(cfg.Match.RateLimit) / 60.0)
	if cfg.Match.RateLimit < 1 {
		perSecond = rate.Inf
	}

	return &Scorer{
		concurrency: concurrency,
		limiter:     rate.NewLimiter(perSecond, concurrency),
		logger:      logging.GetGlobalLogger(),
	}
}

// Score walks the parsed job description tree and evaluates every requirement
// item through match. The tree's first level is categories, the second
// subcategories, the third a list of requirement items.
//
// A category whose value is not an object is logged and skipped. A
// subcategory whose value is not a list is a hard error: that shape means the
// job description parse went wrong, not that a category is merely unusual.
// A failed match call never fails the walk; the item records an Error outcome
// and scores zero.
func (s *Scorer) Score(ctx context.Context, parsedJD map[string]interface{}, match MatchFunc) (*Result, error) {
	result := &Result{
		Results:        make(map[string]map[string]map[string]*models.MatchOutcome),
		CategoryScores: make(map[string]float64),
	}

	type task struct {
		category    string
		subcategory string
		item        string
	}
	var tasks []task

	for category, raw := range parsedJD {
		subcategories, ok := raw.(map[string]interface{})
		if !ok {
			s.logger.Warn("Skipping category with unexpected shape", map[string]interface{}{
				"category": category,
			})
			continue
		}

		result.Results[category] = make(map[string]map[string]*models.MatchOutcome)

		for subcategory, rawItems := range subcategories {
			items, ok := rawItems.([]interface{})
			if !ok {
				return nil, utils.NewValidationError(fmt.Sprintf("Invalid items format in subcategory '%s'", subcategory))
			}

			result.Results[category][subcategory] = make(map[string]*models.MatchOutcome)

			for _, rawItem := range items {
				item := fmt.Sprintf("%v", rawItem)
				tasks = append(tasks, task{category: category, subcategory: subcategory, item: item})
			}
		}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, tk := range tasks {
		tk := tk
		g.Go(func() error {
			if err := s.limiter.Wait(gctx); err != nil {
				return err
			}

			outcome, err := match(gctx, tk.item)
			if err != nil {
				s.logger.Error("Requirement match failed", map[string]interface{}{
					"category":    tk.category,
					"subcategory": tk.subcategory,
					"item":        tk.item,
					"error":       err.Error(),
				})
				outcome = &models.MatchOutcome{
					MatchLevel: models.MatchLevelError,
					Reason:     fmt.Sprintf("Matching failed: %v", err),
					Evidence:   "",
				}
			}

			mu.Lock()
			result.Results[tk.category][tk.subcategory][tk.item] = outcome
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.aggregate(result)
	return result, nil
}

// aggregate computes per-category and overall scores from the recorded
// outcomes. Unknown match levels score zero rather than failing.
func (s *Scorer) aggregate(result *Result) {
	var overallTotal float64
	var overallCount int

	for category, subcategories := range result.Results {
		var categoryTotal float64
		var categoryCount int

		for _, items := range subcategories {
			for _, outcome := range items {
				score := models.ScoreFor(outcome.MatchLevel)
				categoryTotal += score
				categoryCount++
				overallTotal += score
				overallCount++
			}
		}

		if categoryCount > 0 {
			result.CategoryScores[category] = categoryTotal / float64(categoryCount)
		}
	}

	if overallCount > 0 {
		result.OverallScore = overallTotal / float64(overallCount)
	}
}
