package middleware

import (
	"strconv"
	"time"

	"gastai/internal/services"

	"github.com/labstack/echo/v4"
)

// HTTPMetrics records request counts and latency per route. The route
// template (c.Path) is used instead of the raw URL to keep label cardinality
// bounded.
func HTTPMetrics(recorder services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			started := time.Now()
			err := next(c)

			recorder.RecordHTTPRequest(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(c.Response().Status),
				time.Since(started),
			)

			return err
		}
	}
}
