package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"talentlens/internal/config"
	"talentlens/internal/llm"
	"talentlens/internal/llm/processors"
	"talentlens/internal/llm/prompts"
	"talentlens/internal/logging"
	"talentlens/internal/matching"
	"talentlens/pkg/models"
	"talentlens/pkg/utils"
)

// MatchHandler scores a parsed job description against a parsed resume,
// requirement by requirement. The two documents arrive in the body as the
// parse endpoints produced them; the caller's LLM credential arrives as a
// header.
func MatchHandler(cfg *config.Config, llmManager *llm.Manager, scorer *matching.Scorer) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		apiKey := c.Request().Header.Get("openai_api_key")
		if apiKey == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Missing required header: openai_api_key"})
		}

		var req models.MatchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Invalid request format"})
		}

		jobDetails := req.JobDescription.ParsedData
		resumeDetails := req.Resume.Response
		if len(jobDetails) == 0 || len(resumeDetails) == 0 {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Job description or resume data is missing."})
		}

		logger.Info("Matching resume against job description", map[string]interface{}{
			"request_id": requestID,
			"categories": len(jobDetails),
		})

		matchItem := func(ctx context.Context, item string) (*models.MatchOutcome, error) {
			raw, err := llmManager.Complete(ctx, models.CompletionRequest{
				Messages: []models.Message{
					{Role: models.RoleSystem, Content: prompts.MatchItemSystem},
					{Role: models.RoleUser, Content: prompts.MatchItem(item, resumeDetails)},
				},
				MaxTokens:   prompts.MatchItemParams.MaxTokens,
				Temperature: prompts.MatchItemParams.Temperature,
				APIKey:      apiKey,
			})
			if err != nil {
				return nil, err
			}

			parsed, err := processors.CoerceJSONObject(raw)
			if err != nil {
				return nil, err
			}

			outcome := &models.MatchOutcome{
				MatchLevel: models.MatchLevelNone,
			}
			if level, ok := parsed["match_level"].(string); ok && level != "" {
				outcome.MatchLevel = level
			}
			if reason, ok := parsed["reason"].(string); ok {
				outcome.Reason = reason
			}
			if evidence, ok := parsed["evidence"].(string); ok {
				outcome.Evidence = evidence
			}
			return outcome, nil
		}

		result, err := scorer.Score(c.Request().Context(), jobDetails, matchItem)
		if err != nil {
			logger.Error("Matching failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.JSON(utils.HTTPStatus(err), models.ErrorDetail{Detail: err.Error()})
		}

		return c.JSON(http.StatusOK, models.MatchResponse{
			Message:         "Matching completed successfully.",
			MatchingResults: result.Results,
			CategoryScores:  result.CategoryScores,
			OverallScore:    result.OverallScore,
		})
	}
}
