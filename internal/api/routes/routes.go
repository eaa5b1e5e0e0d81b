package routes

import (
	"net/http"

	"talentlens/internal/api/handlers"
	"talentlens/internal/api/middleware"
	"talentlens/internal/cache"
	"talentlens/internal/config"
	"talentlens/internal/extractor"
	"talentlens/internal/llm"
	"talentlens/internal/matching"
	"talentlens/internal/search"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Dependencies carries the shared components the handlers close over.
type Dependencies struct {
	Config       *config.Config
	LLMManager   *llm.Manager
	SearchClient *search.Client
	Extractor    *extractor.Extractor
	Scorer       *matching.Scorer
	JDCache      *cache.JDCache
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	cfg := deps.Config

	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Selective timeout: the configured read timeout for plain endpoints,
	// the LLM timeout for endpoints that hold model round trips
	e.Use(middleware.SelectiveTimeout(cfg.Server.ReadTimeout, cfg.LLM.Timeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(deps.LLMManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(deps.LLMManager))

	// Domain routes, paths as the service's clients already call them
	e.POST("/process-query/", handlers.ProcessQueryHandler(cfg, deps.SearchClient, deps.LLMManager))
	e.POST("/parse_jd/", handlers.ParseJDHandler(cfg, deps.LLMManager, deps.JDCache))
	e.POST("/match/", handlers.MatchHandler(cfg, deps.LLMManager, deps.Scorer))
	e.POST("/upload_resume/", handlers.UploadResumeHandler(cfg, deps.LLMManager, deps.Extractor))

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "TalentLens",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
