package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gastai/internal/models"
	"gastai/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const recentTransactionLimit = 10

// RecommendationService produces saving suggestions from the user's recent
// spending via an external text generator. The generator is advisory only:
// any failure yields an empty list, never an error, so the rest of the app is
// unaffected by upstream outages.
type RecommendationService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       RecommendationGeneratorInterface
	timeout         time.Duration
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(
	transactionRepo repositories.TransactionRepositoryInterface,
	generator RecommendationGeneratorInterface,
	timeout time.Duration,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) RecommendationServiceInterface {
	return &RecommendationService{
		transactionRepo: transactionRepo,
		generator:       generator,
		timeout:         timeout,
		metrics:         metrics,
		logger:          logger,
	}
}

// generatedRecommendation is the shape we ask the model for. Savings arrive
// as a JSON number; anything else fails the parse and degrades to empty.
type generatedRecommendation struct {
	Kind             string          `json:"kind"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Impact           string          `json:"impact"`
	EstimatedSavings decimal.Decimal `json:"estimated_savings"`
}

// GetRecommendations returns normalized suggestions for the user's recent
// spending. An empty ledger short-circuits without calling the generator.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]models.Recommendation, error) {
	started := time.Now()

	recent, err := s.transactionRepo.ListRecentByUser(userID, recentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent transactions: %w", err)
	}

	if len(recent) == 0 {
		s.metrics.RecordRecommendationRequest("empty_ledger", time.Since(started))
		return []models.Recommendation{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.generator.Generate(ctx, buildRecommendationPrompt(recent))
	if err != nil {
		s.metrics.RecordRecommendationRequest("generator_error", time.Since(started))
		s.logger.Warn("recommendation generator failed", "error", err, "user_id", userID)
		return []models.Recommendation{}, nil
	}

	recommendations, err := parseRecommendations(reply)
	if err != nil {
		s.metrics.RecordRecommendationRequest("parse_error", time.Since(started))
		s.logger.Warn("unparseable generator reply", "error", err, "user_id", userID)
		return []models.Recommendation{}, nil
	}

	s.metrics.RecordRecommendationRequest("success", time.Since(started))

	return recommendations, nil
}

// buildRecommendationPrompt renders the user's recent entries and a spending
// summary into a strict-JSON instruction. Amounts and category names come
// verbatim from the ledger; the model is told not to invent others.
func buildRecommendationPrompt(transactions []models.Transaction) string {
	var b strings.Builder

	expenseTotal := decimal.Zero
	incomeTotal := decimal.Zero

	b.WriteString("Recent transactions (newest first):\n")
	for i := range transactions {
		t := &transactions[i]
		fmt.Fprintf(&b, "- %s %s %s in category %q",
			t.Date.Format("2006-01-02"), t.Type, t.Amount.StringFixed(2), t.Category.Name)
		if t.Description != "" {
			fmt.Fprintf(&b, " (%s)", t.Description)
		}
		b.WriteString("\n")

		if t.IsExpense() {
			expenseTotal = expenseTotal.Add(t.Amount)
		} else {
			incomeTotal = incomeTotal.Add(t.Amount)
		}
	}

	fmt.Fprintf(&b, "\nExpense total: %s. Income total: %s.\n\n",
		expenseTotal.StringFixed(2), incomeTotal.StringFixed(2))

	b.WriteString("Based only on the expenses above, suggest up to 4 ways to save money. ")
	b.WriteString("Reply with a JSON array and nothing else. Each element: ")
	b.WriteString(`{"kind":"warning"|"tip"|"insight","title":string,"description":string,` +
		`"impact":"low"|"medium"|"high","estimated_savings":number}. `)
	b.WriteString("Never invent amounts or categories that are not listed above. ")
	b.WriteString("Do not comment on income.")

	return b.String()
}

// parseRecommendations decodes the generator reply and normalizes each
// record. Models occasionally wrap the array in prose or code fences, so the
// outermost bracket pair is extracted first.
func parseRecommendations(reply string) ([]models.Recommendation, error) {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array in reply")
	}

	var raw []generatedRecommendation
	if err := json.Unmarshal([]byte(reply[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}

	recommendations := make([]models.Recommendation, 0, len(raw))
	for i, r := range raw {
		if strings.TrimSpace(r.Title) == "" {
			continue
		}

		kind := strings.ToLower(strings.TrimSpace(r.Kind))
		if !models.IsValidRecommendationKind(kind) {
			kind = models.RecommendationKindTip
		}

		impact := strings.ToLower(strings.TrimSpace(r.Impact))
		if !models.IsValidRecommendationImpact(impact) {
			impact = models.RecommendationImpactLow
		}

		savings := r.EstimatedSavings
		if savings.IsNegative() {
			savings = decimal.Zero
		}

		recommendations = append(recommendations, models.Recommendation{
			ID:               i + 1,
			Kind:             kind,
			Title:            strings.TrimSpace(r.Title),
			Description:      strings.TrimSpace(r.Description),
			Impact:           impact,
			EstimatedSavings: savings,
		})
	}

	return recommendations, nil
}
