package models

import "github.com/shopspring/decimal"

// Recommendation kinds
const (
	RecommendationKindWarning = "warning"
	RecommendationKindTip     = "tip"
	RecommendationKindInsight = "insight"
)

// Recommendation impact levels
const (
	RecommendationImpactLow    = "low"
	RecommendationImpactMedium = "medium"
	RecommendationImpactHigh   = "high"
)

// Recommendation is a normalized suggestion produced by the external
// generator. The record shape is ours, not the provider's, so the generator
// backend can be swapped without touching anything downstream.
type Recommendation struct {
	ID               int             `json:"id"`
	Kind             string          `json:"kind"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Impact           string          `json:"impact"`
	EstimatedSavings decimal.Decimal `json:"estimated_savings"`
}

// IsValidRecommendationKind checks if the kind is one of the known values
func IsValidRecommendationKind(kind string) bool {
	switch kind {
	case RecommendationKindWarning, RecommendationKindTip, RecommendationKindInsight:
		return true
	default:
		return false
	}
}

// IsValidRecommendationImpact checks if the impact is one of the known values
func IsValidRecommendationImpact(impact string) bool {
	switch impact {
	case RecommendationImpactLow, RecommendationImpactMedium, RecommendationImpactHigh:
		return true
	default:
		return false
	}
}
