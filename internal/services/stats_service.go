package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"gastai/internal/models"
	"gastai/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// StatsService is the aggregation engine. It fetches a user's ledger from the
// store and computes every figure in memory on decimals, so the arithmetic is
// identical across database backends. Empty ledgers produce zero values, not
// errors.
type StatsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(transactionRepo repositories.TransactionRepositoryInterface, logger *slog.Logger) StatsServiceInterface {
	return &StatsService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// GetDashboardStats computes the current-month snapshot plus lifetime balance.
// now anchors "current month" so the figures are reproducible in tests.
func (s *StatsService) GetDashboardStats(userID uuid.UUID, now time.Time) (*models.DashboardStats, error) {
	transactions, err := s.transactionRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	currYear, currMonth := now.Year(), int(now.Month())
	prevYear, prevMonth := previousMonth(currYear, currMonth)

	balance := decimal.Zero
	monthExpenses := decimal.Zero
	monthIncome := decimal.Zero
	lastMonthExpenses := decimal.Zero
	byCategory := map[uuid.UUID]*models.CategoryTotal{}
	byDay := map[string]decimal.Decimal{}

	for i := range transactions {
		t := &transactions[i]

		if t.IsIncome() {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}

		inCurrentMonth := t.Date.Year() == currYear && int(t.Date.Month()) == currMonth

		if t.IsIncome() {
			if inCurrentMonth {
				monthIncome = monthIncome.Add(t.Amount)
			}
			continue
		}

		if t.Date.Year() == prevYear && int(t.Date.Month()) == prevMonth {
			lastMonthExpenses = lastMonthExpenses.Add(t.Amount)
		}

		if !inCurrentMonth {
			continue
		}

		monthExpenses = monthExpenses.Add(t.Amount)

		entry, ok := byCategory[t.CategoryID]
		if !ok {
			entry = &models.CategoryTotal{
				CategoryID: t.CategoryID,
				Category:   t.Category.Name,
				Color:      t.Category.Color,
				Icon:       t.Category.Icon,
				Total:      decimal.Zero,
			}
			byCategory[t.CategoryID] = entry
		}
		entry.Total = entry.Total.Add(t.Amount)

		day := t.Date.Format("2006-01-02")
		byDay[day] = byDay[day].Add(t.Amount)
	}

	return &models.DashboardStats{
		Balance:            balance,
		MonthExpenses:      monthExpenses,
		MonthIncome:        monthIncome,
		LastMonth:          lastMonthExpenses,
		ExpensesByCategory: sortCategoryTotals(byCategory),
		PercentageChange:   percentageChange(monthExpenses, lastMonthExpenses),
		DailyExpenses:      sortDailyTotals(byDay),
	}, nil
}

// GetStatistics computes the trailing 6-month report plus lifetime counts.
func (s *StatsService) GetStatistics(userID uuid.UUID, now time.Time) (*models.Statistics, error) {
	totalExpenses, err := s.transactionRepo.CountByUserAndType(userID, models.TransactionTypeExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to count expenses: %w", err)
	}

	totalIncome, err := s.transactionRepo.CountByUserAndType(userID, models.TransactionTypeIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to count income: %w", err)
	}

	// The lifetime expense set also feeds highest expense and dominant
	// category; window figures filter it by date below.
	expenses, err := s.transactionRepo.ListByUserAndType(userID, models.TransactionTypeExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	since := now.AddDate(0, -6, 0)

	income, err := s.transactionRepo.ListByUserAndTypeSince(userID, models.TransactionTypeIncome, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch income: %w", err)
	}

	byCategory := map[uuid.UUID]*models.CategoryTotal{}
	monthlyExpenses := map[monthKey]decimal.Decimal{}
	lifetimeMonths := map[monthKey]decimal.Decimal{}
	monthlyIncome := map[monthKey]decimal.Decimal{}
	dominantSums := map[uuid.UUID]decimal.Decimal{}
	dominantNames := map[uuid.UUID]string{}
	totalExpenseSum := decimal.Zero

	var highest *models.HighestExpense

	for i := range expenses {
		t := &expenses[i]

		totalExpenseSum = totalExpenseSum.Add(t.Amount)
		dominantSums[t.CategoryID] = dominantSums[t.CategoryID].Add(t.Amount)
		dominantNames[t.CategoryID] = t.Category.Name

		key := monthKey{t.Date.Year(), int(t.Date.Month())}

		// The average spans every month with an expense, not just the window
		lifetimeMonths[key] = lifetimeMonths[key].Add(t.Amount)

		if highest == nil || t.Amount.GreaterThan(highest.Amount) {
			highest = &models.HighestExpense{
				Amount:   t.Amount,
				Category: t.Category.Name,
			}
		}

		if t.Date.Before(since) {
			continue
		}

		monthlyExpenses[key] = monthlyExpenses[key].Add(t.Amount)

		entry, ok := byCategory[t.CategoryID]
		if !ok {
			entry = &models.CategoryTotal{
				CategoryID: t.CategoryID,
				Category:   t.Category.Name,
				Color:      t.Category.Color,
				Icon:       t.Category.Icon,
				Total:      decimal.Zero,
			}
			byCategory[t.CategoryID] = entry
		}
		entry.Total = entry.Total.Add(t.Amount)
	}

	for i := range income {
		t := &income[i]
		key := monthKey{t.Date.Year(), int(t.Date.Month())}
		monthlyIncome[key] = monthlyIncome[key].Add(t.Amount)
	}

	return &models.Statistics{
		TotalExpenses:         totalExpenses,
		TotalIncome:           totalIncome,
		MonthlyExpenses:       sortMonthlyTotals(monthlyExpenses),
		MonthlyIncome:         sortMonthlyTotals(monthlyIncome),
		ExpensesByCategory:    sortCategoryTotals(byCategory),
		AverageMonthlyExpense: averageMonthly(lifetimeMonths),
		HighestExpense:        highest,
		DominantCategory:      dominantCategory(dominantSums, dominantNames, totalExpenseSum),
		MonthlyChange:         monthlyChange(monthlyExpenses, now),
	}, nil
}

type monthKey struct {
	year  int
	month int
}

// previousMonth steps one calendar month back, wrapping January into December
// of the prior year.
func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// percentageChange is (curr - prev) / prev * 100, kept exact as a decimal.
// A previous month at or below zero yields 0.
func percentageChange(curr, prev decimal.Decimal) decimal.Decimal {
	if !prev.IsPositive() {
		return decimal.Zero
	}
	return curr.Sub(prev).Div(prev).Mul(oneHundred)
}

// averageMonthly is the mean over every month that actually had expenses,
// across the whole ledger. Months with no entries are absent from the buckets
// and do not drag the mean down.
func averageMonthly(buckets map[monthKey]decimal.Decimal) decimal.Decimal {
	if len(buckets) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, total := range buckets {
		sum = sum.Add(total)
	}
	return sum.Div(decimal.NewFromInt(int64(len(buckets))))
}

// dominantCategory picks the category with the largest summed expense and its
// integer share of total expenses. With no expenses the name is nil and the
// percentage 0.
func dominantCategory(sums map[uuid.UUID]decimal.Decimal, names map[uuid.UUID]string, total decimal.Decimal) models.DominantCategory {
	if len(sums) == 0 || !total.IsPositive() {
		return models.DominantCategory{Name: nil, Percentage: 0}
	}

	var topID uuid.UUID
	top := decimal.Decimal{}
	first := true
	for id, sum := range sums {
		if first || sum.GreaterThan(top) || (sum.Equal(top) && names[id] < names[topID]) {
			topID, top, first = id, sum, false
		}
	}

	name := names[topID]
	percentage := int(top.Div(total).Mul(oneHundred).Round(0).IntPart())

	return models.DominantCategory{Name: &name, Percentage: percentage}
}

// monthlyChange compares the current month's expense bucket against the
// previous month's, rounded to an integer percentage. Either bucket missing,
// or a non-positive previous month, degrades to 0.
func monthlyChange(buckets map[monthKey]decimal.Decimal, now time.Time) int {
	currKey := monthKey{now.Year(), int(now.Month())}
	prevYear, prevMonth := previousMonth(currKey.year, currKey.month)
	prevKey := monthKey{prevYear, prevMonth}

	curr, hasCurr := buckets[currKey]
	prev, hasPrev := buckets[prevKey]
	if !hasCurr || !hasPrev || !prev.IsPositive() {
		return 0
	}

	return int(curr.Sub(prev).Div(prev).Mul(oneHundred).Round(0).IntPart())
}

func sortCategoryTotals(byCategory map[uuid.UUID]*models.CategoryTotal) []models.CategoryTotal {
	totals := make([]models.CategoryTotal, 0, len(byCategory))
	for _, entry := range byCategory {
		totals = append(totals, *entry)
	}

	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})

	return totals
}

func sortDailyTotals(byDay map[string]decimal.Decimal) []models.DailyTotal {
	totals := make([]models.DailyTotal, 0, len(byDay))
	for day, total := range byDay {
		totals = append(totals, models.DailyTotal{Day: day, Total: total})
	}

	// Days format as YYYY-MM-DD so lexical order is chronological.
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Day < totals[j].Day
	})

	return totals
}

func sortMonthlyTotals(byMonth map[monthKey]decimal.Decimal) []models.MonthlyTotal {
	totals := make([]models.MonthlyTotal, 0, len(byMonth))
	for key, total := range byMonth {
		totals = append(totals, models.MonthlyTotal{Year: key.year, Month: key.month, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		return totals[i].Month < totals[j].Month
	})

	return totals
}
