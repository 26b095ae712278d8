package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Derived aggregation results. None of these are persisted: each is computed
// fresh from the ledger on every request and discarded after the response.

// CategoryTotal is a per-category expense sum joined with the category's
// display metadata. Categories without matching transactions are omitted.
type CategoryTotal struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Category   string          `json:"category"`
	Color      string          `json:"color"`
	Icon       string          `json:"icon,omitempty"`
	Total      decimal.Decimal `json:"total"`
}

// DailyTotal is one day's expense sum inside a month. Days with no expense
// transactions never appear; the series is sparse by contract.
type DailyTotal struct {
	Day   string          `json:"day"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// MonthlyTotal is one calendar month's sum for a single transaction type.
type MonthlyTotal struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// HighestExpense pairs the single largest expense with its category name.
type HighestExpense struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

// DominantCategory is the category with the largest summed expense amount.
// Percentage is its share of total expenses, rounded half-up to an integer;
// 0 when there are no expenses at all.
type DominantCategory struct {
	Name       *string `json:"name"`
	Percentage int     `json:"percentage"`
}

// DashboardStats backs GET /dashboard/stats: the current month's snapshot
// plus the lifetime balance.
type DashboardStats struct {
	Balance            decimal.Decimal `json:"balance"`
	MonthExpenses      decimal.Decimal `json:"monthExpenses"`
	MonthIncome        decimal.Decimal `json:"monthIncome"`
	LastMonth          decimal.Decimal `json:"lastMonth"`
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`
	PercentageChange   decimal.Decimal `json:"percentageChange"`
	DailyExpenses      []DailyTotal    `json:"dailyExpenses"`
}

// Statistics backs GET /stats: the 6-month trailing window plus lifetime
// figures. TotalExpenses and TotalIncome are transaction counts, not sums.
type Statistics struct {
	TotalExpenses         int64            `json:"total_expenses"`
	TotalIncome           int64            `json:"total_income"`
	MonthlyExpenses       []MonthlyTotal   `json:"monthly_expenses"`
	MonthlyIncome         []MonthlyTotal   `json:"monthly_income"`
	ExpensesByCategory    []CategoryTotal  `json:"expenses_by_category"`
	AverageMonthlyExpense decimal.Decimal  `json:"average_monthly_expense"`
	HighestExpense        *HighestExpense  `json:"highest_expense"`
	DominantCategory      DominantCategory `json:"dominant_category"`
	MonthlyChange         int              `json:"monthly_change"`
}
