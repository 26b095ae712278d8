package handlers

import (
	"net/http"

	"gastai/internal/errors"
	"gastai/internal/services"

	"github.com/labstack/echo/v4"
)

// RecommendationHandler handles GET /api/recommendations. Upstream generator
// failures never surface here: the service degrades to an empty list, so the
// only errors left are store failures.
type RecommendationHandler struct {
	recommendationService services.RecommendationServiceInterface
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationService services.RecommendationServiceInterface) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// List handles GET /api/recommendations
func (h *RecommendationHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	recommendations, err := h.recommendationService.GetRecommendations(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, recommendations, "")
}
