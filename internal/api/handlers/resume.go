package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"talentlens/internal/config"
	"talentlens/internal/experience"
	"talentlens/internal/extractor"
	"talentlens/internal/llm"
	"talentlens/internal/llm/processors"
	"talentlens/internal/llm/prompts"
	"talentlens/internal/logging"
	"talentlens/pkg/models"
	"talentlens/pkg/utils"
)

// UploadResumeHandler extracts text from an uploaded resume, asks the LLM for
// a structured breakdown, and replaces the model's experience figures with
// ones computed from the employment date ranges.
func UploadResumeHandler(cfg *config.Config, llmManager *llm.Manager, ext *extractor.Extractor) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		apiKey := c.Request().Header.Get("openai_api_key")
		if apiKey == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Missing required header: openai_api_key"})
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Missing required file upload: file"})
		}

		file, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorDetail{
				Detail: fmt.Sprintf("An error occurred: %v", err),
			})
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorDetail{
				Detail: fmt.Sprintf("An error occurred: %v", err),
			})
		}

		logger.Info("Processing resume upload", map[string]interface{}{
			"request_id": requestID,
			"filename":   fileHeader.Filename,
			"size":       len(data),
		})

		resumeText, err := ext.ExtractText(fileHeader.Filename, data)
		if err != nil {
			if errors.Is(err, extractor.ErrUnsupportedFormat) {
				return c.JSON(http.StatusBadRequest, models.ErrorDetail{
					Detail: "Unsupported file format. Please upload a PDF or DOCX file.",
				})
			}
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{
				Detail: fmt.Sprintf("Failed to extract text from resume: %v", err),
			})
		}

		raw, err := llmManager.Complete(c.Request().Context(), models.CompletionRequest{
			Messages: []models.Message{
				{Role: models.RoleSystem, Content: prompts.ResumeInsightsSystem},
				{Role: models.RoleUser, Content: prompts.ResumeInsights(resumeText)},
			},
			MaxTokens:   prompts.ResumeInsightsParams.MaxTokens,
			Temperature: prompts.ResumeInsightsParams.Temperature,
			APIKey:      apiKey,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorDetail{
				Detail: fmt.Sprintf("An error occurred: %v", err),
			})
		}

		insights, err := processors.CoerceJSONObject(raw)
		if err != nil {
			logger.Error("Resume parse returned unusable JSON", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusInternalServerError, models.ErrorDetail{
				Detail: "Invalid JSON response from OpenAI.",
			})
		}

		// Replace model-reported experience figures with computed ones. The
		// model's arithmetic over date ranges is not trusted.
		records := experience.RecordsFromAny(insights[models.WorkExperienceKey])
		result := experience.Aggregate(records, time.Now().UTC())
		insights[models.TotalExperienceKey] = result.TotalYears
		insights[models.WorkExperienceKey] = result.Records

		if result.Dropped > 0 {
			logger.Warn("Dropped work experience records with unparseable dates", map[string]interface{}{
				"request_id": requestID,
				"dropped":    result.Dropped,
			})
		}

		return c.JSON(http.StatusOK, models.UploadResumeResponse{
			Message:     "Resume parsed successfully.",
			GPTResponse: insights,
		})
	}
}
