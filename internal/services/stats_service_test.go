package services

import (
	"log/slog"
	"testing"
	"time"

	"gastai/internal/database"
	"gastai/internal/models"
	"gastai/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StatsServiceTestSuite runs the aggregation engine against a real in-memory
// database so date filtering and preloading behave as in production.
type StatsServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	user    *models.User
	food    *models.Category
	travel  *models.Category
	salary  *models.Category
	service StatsServiceInterface
}

func (s *StatsServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.user = database.CreateTestUser(s.T(), s.db, "stats@example.com")
	s.food = database.CreateTestCategory(s.T(), s.db, "Alimentación", models.TransactionTypeExpense)
	s.travel = database.CreateTestCategory(s.T(), s.db, "Transporte", models.TransactionTypeExpense)
	s.salary = database.CreateTestCategory(s.T(), s.db, "Salario", models.TransactionTypeIncome)

	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	s.service = NewStatsService(transactionRepo, slog.Default())
}

func (s *StatsServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestStatsServiceSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

func (s *StatsServiceTestSuite) addTransaction(categoryID uuid.UUID, transactionType, amount string, date time.Time) {
	transaction := &models.Transaction{
		UserID:     s.user.ID,
		Type:       transactionType,
		Amount:     decimal.RequireFromString(amount),
		Date:       date,
		CategoryID: categoryID,
	}
	s.Require().NoError(s.db.Create(transaction).Error)
}

func (s *StatsServiceTestSuite) date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *StatsServiceTestSuite) TestGetDashboardStats_EmptyLedger() {
	now := s.date(2025, time.March, 15)

	stats, err := s.service.GetDashboardStats(s.user.ID, now)
	s.Require().NoError(err)

	s.True(stats.Balance.IsZero())
	s.True(stats.MonthExpenses.IsZero())
	s.True(stats.MonthIncome.IsZero())
	s.True(stats.LastMonth.IsZero())
	s.True(stats.PercentageChange.IsZero())
	s.Empty(stats.ExpensesByCategory)
	s.Empty(stats.DailyExpenses)
}

func (s *StatsServiceTestSuite) TestGetDashboardStats_CurrentMonthSnapshot() {
	now := s.date(2025, time.March, 15)

	s.addTransaction(s.salary.ID, models.TransactionTypeIncome, "1000.00", s.date(2025, time.March, 1))
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "100.00", s.date(2025, time.March, 5))
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "50.00", s.date(2025, time.March, 5))
	s.addTransaction(s.travel.ID, models.TransactionTypeExpense, "30.00", s.date(2025, time.March, 10))
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "200.00", s.date(2025, time.February, 20))
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "40.00", s.date(2024, time.March, 5))

	stats, err := s.service.GetDashboardStats(s.user.ID, now)
	s.Require().NoError(err)

	s.True(stats.Balance.Equal(decimal.RequireFromString("580.00")), "balance %s", stats.Balance)
	s.True(stats.MonthExpenses.Equal(decimal.RequireFromString("180.00")))
	s.True(stats.MonthIncome.Equal(decimal.RequireFromString("1000.00")))
	s.True(stats.LastMonth.Equal(decimal.RequireFromString("200.00")))

	// (180 - 200) / 200 * 100 = -10
	s.True(stats.PercentageChange.Equal(decimal.RequireFromString("-10")), "change %s", stats.PercentageChange)

	s.Require().Len(stats.ExpensesByCategory, 2)
	s.Equal("Alimentación", stats.ExpensesByCategory[0].Category)
	s.True(stats.ExpensesByCategory[0].Total.Equal(decimal.RequireFromString("150.00")))
	s.Equal("Transporte", stats.ExpensesByCategory[1].Category)
	s.True(stats.ExpensesByCategory[1].Total.Equal(decimal.RequireFromString("30.00")))

	s.Require().Len(stats.DailyExpenses, 2)
	s.Equal("2025-03-05", stats.DailyExpenses[0].Day)
	s.True(stats.DailyExpenses[0].Total.Equal(decimal.RequireFromString("150.00")))
	s.Equal("2025-03-10", stats.DailyExpenses[1].Day)
	s.True(stats.DailyExpenses[1].Total.Equal(decimal.RequireFromString("30.00")))
}

func (s *StatsServiceTestSuite) TestGetDashboardStats_JanuaryWrapsToDecember() {
	now := s.date(2025, time.January, 10)

	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "120.00", s.date(2025, time.January, 3))
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "100.00", s.date(2024, time.December, 28))
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "999.00", s.date(2024, time.January, 15))

	stats, err := s.service.GetDashboardStats(s.user.ID, now)
	s.Require().NoError(err)

	s.True(stats.LastMonth.Equal(decimal.RequireFromString("100.00")), "last month %s", stats.LastMonth)

	// (120 - 100) / 100 * 100 = 20
	s.True(stats.PercentageChange.Equal(decimal.RequireFromString("20")))
}

func (s *StatsServiceTestSuite) TestGetDashboardStats_NoPreviousMonthMeansZeroChange() {
	now := s.date(2025, time.March, 15)

	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "75.00", s.date(2025, time.March, 2))

	stats, err := s.service.GetDashboardStats(s.user.ID, now)
	s.Require().NoError(err)

	s.True(stats.MonthExpenses.Equal(decimal.RequireFromString("75.00")))
	s.True(stats.LastMonth.IsZero())
	s.True(stats.PercentageChange.IsZero())
}

func (s *StatsServiceTestSuite) TestGetStatistics_EmptyLedger() {
	now := s.date(2025, time.March, 15)

	stats, err := s.service.GetStatistics(s.user.ID, now)
	s.Require().NoError(err)

	s.Zero(stats.TotalExpenses)
	s.Zero(stats.TotalIncome)
	s.Empty(stats.MonthlyExpenses)
	s.Empty(stats.MonthlyIncome)
	s.Empty(stats.ExpensesByCategory)
	s.True(stats.AverageMonthlyExpense.IsZero())
	s.Nil(stats.HighestExpense)
	s.Nil(stats.DominantCategory.Name)
	s.Zero(stats.DominantCategory.Percentage)
	s.Zero(stats.MonthlyChange)
}

func (s *StatsServiceTestSuite) TestGetStatistics_SixMonthWindow() {
	now := s.date(2025, time.June, 15)

	// Inside the window.
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "300.00", s.date(2025, time.June, 5))
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "200.00", s.date(2025, time.May, 10))
	s.addTransaction(s.travel.ID, models.TransactionTypeExpense, "100.00", s.date(2025, time.March, 8))
	s.addTransaction(s.salary.ID, models.TransactionTypeIncome, "2000.00", s.date(2025, time.June, 1))
	s.addTransaction(s.salary.ID, models.TransactionTypeIncome, "1800.00", s.date(2025, time.April, 1))

	// Outside the window: excluded from the series but still counted, still a
	// candidate for highest expense, and still a month in the average.
	s.addTransaction(s.travel.ID, models.TransactionTypeExpense, "950.00", s.date(2024, time.July, 20))

	stats, err := s.service.GetStatistics(s.user.ID, now)
	s.Require().NoError(err)

	s.Equal(int64(4), stats.TotalExpenses)
	s.Equal(int64(2), stats.TotalIncome)

	s.Require().Len(stats.MonthlyExpenses, 3)
	s.Equal(3, stats.MonthlyExpenses[0].Month)
	s.True(stats.MonthlyExpenses[0].Total.Equal(decimal.RequireFromString("100.00")))
	s.Equal(5, stats.MonthlyExpenses[1].Month)
	s.Equal(6, stats.MonthlyExpenses[2].Month)
	s.True(stats.MonthlyExpenses[2].Total.Equal(decimal.RequireFromString("300.00")))

	s.Require().Len(stats.MonthlyIncome, 2)
	s.Equal(4, stats.MonthlyIncome[0].Month)
	s.Equal(6, stats.MonthlyIncome[1].Month)

	s.Require().Len(stats.ExpensesByCategory, 2)
	s.Equal("Alimentación", stats.ExpensesByCategory[0].Category)
	s.True(stats.ExpensesByCategory[0].Total.Equal(decimal.RequireFromString("500.00")))

	// (100 + 200 + 300 + 950) / 4 months with expenses = 387.5; the 2024
	// month is outside the series window but still counts toward the average
	s.True(stats.AverageMonthlyExpense.Equal(decimal.RequireFromString("387.5")), "avg %s", stats.AverageMonthlyExpense)

	s.Require().NotNil(stats.HighestExpense)
	s.True(stats.HighestExpense.Amount.Equal(decimal.RequireFromString("950.00")))
	s.Equal("Transporte", stats.HighestExpense.Category)

	// Travel dominates lifetime expenses: 1050 of 1550 = 67.7 -> 68
	s.Require().NotNil(stats.DominantCategory.Name)
	s.Equal("Transporte", *stats.DominantCategory.Name)
	s.Equal(68, stats.DominantCategory.Percentage)

	// (300 - 200) / 200 * 100 = 50
	s.Equal(50, stats.MonthlyChange)
}

func (s *StatsServiceTestSuite) TestGetStatistics_AverageSpansWholeLedger() {
	now := s.date(2025, time.June, 15)

	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "100.00", s.date(2025, time.June, 5))
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "40.00", s.date(2023, time.January, 5))
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "20.00", s.date(2023, time.January, 20))

	stats, err := s.service.GetStatistics(s.user.ID, now)
	s.Require().NoError(err)

	// Only the current month lands in the six month series
	s.Require().Len(stats.MonthlyExpenses, 1)
	s.Equal(6, stats.MonthlyExpenses[0].Month)

	// The mean runs over every month with an expense: (100 + 60) / 2
	s.True(stats.AverageMonthlyExpense.Equal(decimal.RequireFromString("80")), "avg %s", stats.AverageMonthlyExpense)
}

func (s *StatsServiceTestSuite) TestGetStatistics_MonthlyChangeNeedsBothMonths() {
	now := s.date(2025, time.June, 15)

	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "300.00", s.date(2025, time.June, 5))
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "100.00", s.date(2025, time.April, 5))

	stats, err := s.service.GetStatistics(s.user.ID, now)
	s.Require().NoError(err)

	// May has no bucket, so the comparison degrades to 0.
	s.Zero(stats.MonthlyChange)
}

func (s *StatsServiceTestSuite) TestGetStatistics_MonthlyChangeRoundsToInt() {
	now := s.date(2025, time.June, 15)

	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "100.00", s.date(2025, time.June, 5))
	s.addTransaction(s.food.ID, models.TransactionTypeExpense, "300.00", s.date(2025, time.May, 5))

	stats, err := s.service.GetStatistics(s.user.ID, now)
	s.Require().NoError(err)

	// (100 - 300) / 300 * 100 = -66.66... -> -67
	s.Equal(-67, stats.MonthlyChange)
}

func (s *StatsServiceTestSuite) TestStatsAreScopedToOwner() {
	now := s.date(2025, time.March, 15)
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	transaction := &models.Transaction{
		UserID:     other.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.RequireFromString("500.00"),
		Date:       s.date(2025, time.March, 2),
		CategoryID: s.food.ID,
	}
	s.Require().NoError(s.db.Create(transaction).Error)

	stats, err := s.service.GetDashboardStats(s.user.ID, now)
	s.Require().NoError(err)
	s.True(stats.MonthExpenses.IsZero())

	statistics, err := s.service.GetStatistics(s.user.ID, now)
	s.Require().NoError(err)
	s.Zero(statistics.TotalExpenses)
}
