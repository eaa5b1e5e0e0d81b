package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"talentlens/internal/config"
	"talentlens/internal/llm"
	"talentlens/internal/llm/processors"
	"talentlens/internal/llm/prompts"
	"talentlens/internal/logging"
	"talentlens/internal/search"
	"talentlens/pkg/models"
	"talentlens/pkg/utils"
)

var validate = validator.New()

// ProcessQueryHandler turns a natural-language candidate query into a
// structured query and an Elasticsearch query. The caller addresses its own
// cluster and supplies its own LLM credential, both as headers.
func ProcessQueryHandler(cfg *config.Config, searchClient *search.Client, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		elasticURL := c.Request().Header.Get("elastic_url")
		if elasticURL == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Missing required header: elastic_url"})
		}
		apiKey := c.Request().Header.Get("openai_api_key")
		if apiKey == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Missing required header: openai_api_key"})
		}

		var req models.ProcessQueryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Invalid request format"})
		}
		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "Query text is required"})
		}

		querySent := time.Now().UTC()
		logger.Info("Processing natural language query", map[string]interface{}{
			"request_id": requestID,
		})

		ctx := c.Request().Context()

		structure, err := searchClient.FetchStructure(ctx, elasticURL)
		if err != nil {
			logger.Error("Failed to fetch index structure", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.JSON(utils.HTTPStatus(err), models.ErrorDetail{Detail: err.Error()})
		}

		raw, err := llmManager.Complete(ctx, models.CompletionRequest{
			Messages: []models.Message{
				{Role: models.RoleSystem, Content: prompts.QueryStructuringSystem(structure)},
				{Role: models.RoleUser, Content: prompts.QueryStructuringUser(req.Query)},
			},
			MaxTokens:   prompts.QueryStructuringParams.MaxTokens,
			Temperature: prompts.QueryStructuringParams.Temperature,
			APIKey:      apiKey,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorDetail{
				Detail: fmt.Sprintf("Error parsing natural query: %v", err),
			})
		}

		parsedQuery, err := processors.CoerceJSONObject(raw)
		if err != nil {
			logger.Error("Query structuring returned unusable JSON", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusInternalServerError, models.ErrorDetail{
				Detail: fmt.Sprintf("Error parsing natural query: %v", err),
			})
		}

		return c.JSON(http.StatusOK, models.ProcessQueryResponse{
			ParsedQuery:  parsedQuery,
			ElasticQuery: search.BuildQuery(parsedQuery),
			QuerySent:    querySent,
		})
	}
}
