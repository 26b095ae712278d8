package handlers

import (
	"net/http"
	"time"

	"gastai/internal/errors"
	"gastai/internal/services"

	"github.com/labstack/echo/v4"
)

// StatsHandler exposes the aggregation engine over HTTP. Both endpoints are
// read-only snapshots anchored at request time.
type StatsHandler struct {
	statsService services.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService services.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// DashboardStats handles GET /api/dashboard/stats
func (h *StatsHandler) DashboardStats(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	stats, err := h.statsService.GetDashboardStats(userID, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, stats, "")
}

// Statistics handles GET /api/stats
func (h *StatsHandler) Statistics(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	stats, err := h.statsService.GetStatistics(userID, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, stats, "")
}
