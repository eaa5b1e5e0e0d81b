package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// llmPaths are the endpoints that hold an LLM round trip (or many, for
// matching) and need a longer deadline than plain endpoints.
var llmPaths = []string{
	"/process-query",
	"/parse_jd",
	"/match",
	"/upload_resume",
}

// SelectiveTimeout applies llmTimeout to LLM-backed endpoints and
// defaultTimeout everywhere else.
func SelectiveTimeout(defaultTimeout, llmTimeout time.Duration) echo.MiddlewareFunc {
	short := TimeoutConfig(defaultTimeout)
	long := TimeoutConfig(llmTimeout)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		shortNext := short(next)
		longNext := long(next)

		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, p := range llmPaths {
				if strings.HasPrefix(path, p) {
					return longNext(c)
				}
			}
			return shortNext(c)
		}
	}
}
