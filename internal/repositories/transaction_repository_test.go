package repositories

import (
	"testing"

	"gastai/internal/database"
	"gastai/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	user     *models.User
	category *models.Category
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, gofakeit.Email())
	s.category = database.CreateTestCategory(s.T(), s.db, "Comida", models.TransactionTypeExpense)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) createTransaction(userID uuid.UUID, transactionType, amount, date string) *models.Transaction {
	transaction := &models.Transaction{
		UserID:      userID,
		Type:        transactionType,
		Amount:      decimal.RequireFromString(amount),
		Description: gofakeit.Sentence(4),
		Date:        mustDate(s.T(), date),
		CategoryID:  s.category.ID,
	}
	s.Require().NoError(s.repo.Create(transaction))
	return transaction
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Create() {
	transaction := s.createTransaction(s.user.ID, models.TransactionTypeExpense, "45.50", "2025-04-01")

	s.NotEqual(uuid.Nil, transaction.ID)
	s.NotZero(transaction.CreatedAt)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Create_RejectsInvalid() {
	err := s.repo.Create(&models.Transaction{
		UserID:     s.user.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.RequireFromString("-5.00"),
		Date:       mustDate(s.T(), "2025-04-01"),
		CategoryID: s.category.ID,
	})
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByIDAndUser() {
	transaction := s.createTransaction(s.user.ID, models.TransactionTypeExpense, "45.50", "2025-04-01")

	found, err := s.repo.GetByIDAndUser(transaction.ID, s.user.ID)
	s.NoError(err)
	s.Equal(transaction.ID, found.ID)
	s.True(found.Amount.Equal(decimal.RequireFromString("45.50")))

	// Category loads with the transaction
	s.Equal(s.category.Name, found.Category.Name)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByIDAndUser_OtherOwnerLooksAbsent() {
	other := database.CreateTestUser(s.T(), s.db, gofakeit.Email())
	transaction := s.createTransaction(other.ID, models.TransactionTypeExpense, "45.50", "2025-04-01")

	_, err := s.repo.GetByIDAndUser(transaction.ID, s.user.ID)
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_ListByUser_NewestFirst() {
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "10.00", "2025-04-01")
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "20.00", "2025-04-15")
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "30.00", "2025-04-08")

	transactions, err := s.repo.ListByUser(s.user.ID)
	s.NoError(err)
	s.Require().Len(transactions, 3)
	s.Equal(mustDate(s.T(), "2025-04-15"), transactions[0].Date)
	s.Equal(mustDate(s.T(), "2025-04-08"), transactions[1].Date)
	s.Equal(mustDate(s.T(), "2025-04-01"), transactions[2].Date)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_ListByUserAndType() {
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "10.00", "2025-04-01")
	s.createTransaction(s.user.ID, models.TransactionTypeIncome, "900.00", "2025-04-01")

	expenses, err := s.repo.ListByUserAndType(s.user.ID, models.TransactionTypeExpense)
	s.NoError(err)
	s.Require().Len(expenses, 1)
	s.Equal(models.TransactionTypeExpense, expenses[0].Type)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_ListByUserAndTypeSince() {
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "10.00", "2025-01-15")
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "20.00", "2025-03-01")
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "30.00", "2025-04-20")

	transactions, err := s.repo.ListByUserAndTypeSince(s.user.ID, models.TransactionTypeExpense, mustDate(s.T(), "2025-03-01"))
	s.NoError(err)
	s.Require().Len(transactions, 2)

	// Ascending by date, boundary date included
	s.Equal(mustDate(s.T(), "2025-03-01"), transactions[0].Date)
	s.Equal(mustDate(s.T(), "2025-04-20"), transactions[1].Date)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_ListRecentByUser() {
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "10.00", "2025-04-01")
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "20.00", "2025-04-10")
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "30.00", "2025-04-20")

	transactions, err := s.repo.ListRecentByUser(s.user.ID, 2)
	s.NoError(err)
	s.Require().Len(transactions, 2)
	s.Equal(mustDate(s.T(), "2025-04-20"), transactions[0].Date)
	s.Equal(mustDate(s.T(), "2025-04-10"), transactions[1].Date)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Update() {
	transaction := s.createTransaction(s.user.ID, models.TransactionTypeExpense, "45.50", "2025-04-01")

	transaction.Amount = decimal.RequireFromString("99.99")
	transaction.Description = "Cena"
	err := s.repo.Update(transaction)
	s.NoError(err)

	updated, err := s.repo.GetByIDAndUser(transaction.ID, s.user.ID)
	s.NoError(err)
	s.True(updated.Amount.Equal(decimal.RequireFromString("99.99")))
	s.Equal("Cena", updated.Description)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Update_OtherOwnerLooksAbsent() {
	other := database.CreateTestUser(s.T(), s.db, gofakeit.Email())
	transaction := s.createTransaction(other.ID, models.TransactionTypeExpense, "45.50", "2025-04-01")

	transaction.UserID = s.user.ID
	err := s.repo.Update(transaction)
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_DeleteByIDAndUser() {
	transaction := s.createTransaction(s.user.ID, models.TransactionTypeExpense, "45.50", "2025-04-01")

	err := s.repo.DeleteByIDAndUser(transaction.ID, s.user.ID)
	s.NoError(err)

	// Second delete of the same id reports not found
	err = s.repo.DeleteByIDAndUser(transaction.ID, s.user.ID)
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Counts() {
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "10.00", "2025-04-01")
	s.createTransaction(s.user.ID, models.TransactionTypeExpense, "20.00", "2025-04-02")
	s.createTransaction(s.user.ID, models.TransactionTypeIncome, "900.00", "2025-04-03")

	count, err := s.repo.CountByUser(s.user.ID)
	s.NoError(err)
	s.Equal(int64(3), count)

	count, err = s.repo.CountByUserAndType(s.user.ID, models.TransactionTypeExpense)
	s.NoError(err)
	s.Equal(int64(2), count)

	count, err = s.repo.CountByUser(uuid.New())
	s.NoError(err)
	s.Equal(int64(0), count)
}
