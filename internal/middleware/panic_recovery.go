package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"gastai/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panicking handler into a 500 with the standard error
// envelope instead of tearing down the connection
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					respondToPanic(c, r)
				}
			}()

			return next(c)
		}
	}
}

func respondToPanic(c echo.Context, cause interface{}) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("Panic recovered",
		"trace_id", traceID,
		"panic", fmt.Sprintf("%v", cause),
		"stack_trace", string(debug.Stack()),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)

	if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
		slog.Error("Failed to send panic recovery response",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}
