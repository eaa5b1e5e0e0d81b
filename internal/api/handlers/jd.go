package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"talentlens/internal/cache"
	"talentlens/internal/config"
	"talentlens/internal/llm"
	"talentlens/internal/llm/processors"
	"talentlens/internal/llm/prompts"
	"talentlens/internal/logging"
	"talentlens/pkg/models"
	"talentlens/pkg/utils"
)

var jdCleaner = processors.NewJDCleaner()

// ParseJDHandler extracts dynamic requirement categories from a job
// description. The description arrives as a form field; the job ID and the
// caller's LLM credential arrive as headers. Parses are cached by job ID when
// Redis is enabled.
func ParseJDHandler(cfg *config.Config, llmManager *llm.Manager, jdCache *cache.JDCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		jobDescription := c.FormValue("job_description")
		if jobDescription == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Missing required form field: job_description"})
		}
		jobID := c.Request().Header.Get("job_id")
		if jobID == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Missing required header: job_id"})
		}
		apiKey := c.Request().Header.Get("authorization")
		if apiKey == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Missing required header: authorization"})
		}

		ctx := c.Request().Context()

		if parsed, ok := jdCache.Get(ctx, jobID); ok {
			logger.Info("Serving job description parse from cache", map[string]interface{}{
				"request_id": requestID,
				"job_id":     jobID,
			})
			return c.JSON(http.StatusOK, models.ParseJDResponse{
				Message:    "Job description parsed successfully.",
				JobID:      jobID,
				ParsedData: parsed,
			})
		}

		logger.Info("Parsing job description", map[string]interface{}{
			"request_id": requestID,
			"job_id":     jobID,
		})

		cleaned := jdCleaner.Clean(jobDescription)

		raw, err := llmManager.Complete(ctx, models.CompletionRequest{
			Messages: []models.Message{
				{Role: models.RoleSystem, Content: prompts.JobDescriptionSystem},
				{Role: models.RoleUser, Content: prompts.JobDescription(cleaned)},
			},
			MaxTokens:   prompts.JobDescriptionParams.MaxTokens,
			Temperature: prompts.JobDescriptionParams.Temperature,
			APIKey:      apiKey,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorDetail{
				Detail: fmt.Sprintf("An error occurred during JD parsing: %v", err),
			})
		}

		parsedData, err := processors.CoerceJSONObject(raw)
		if err != nil {
			logger.Error("JD parse returned unusable JSON", map[string]interface{}{
				"request_id": requestID,
				"job_id":     jobID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusInternalServerError, models.ErrorDetail{
				Detail: "Error parsing JSON response from OpenAI.",
			})
		}

		jdCache.Set(ctx, jobID, parsedData)

		return c.JSON(http.StatusOK, models.ParseJDResponse{
			Message:    "Job description parsed successfully.",
			JobID:      jobID,
			ParsedData: parsedData,
		})
	}
}
