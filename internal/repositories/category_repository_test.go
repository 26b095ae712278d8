package repositories

import (
	"testing"

	"gastai/internal/database"
	"gastai/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestCategoryRepository(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

type CategoryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
}

func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CategoryRepositorySuite) createCategory(name, categoryType string) *models.Category {
	category := &models.Category{
		Name:  name,
		Type:  categoryType,
		Icon:  "🍔",
		Color: "#ef4444",
	}
	s.Require().NoError(s.repo.Create(category))
	return category
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Create() {
	category := s.createCategory("Comida", models.TransactionTypeExpense)

	s.NotEqual(uuid.Nil, category.ID)
	s.NotZero(category.CreatedAt)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetByNameAndType() {
	// Same name may exist once per type
	expense := s.createCategory("Otros", models.TransactionTypeExpense)
	income := s.createCategory("Otros", models.TransactionTypeIncome)

	found, err := s.repo.GetByNameAndType("Otros", models.TransactionTypeExpense)
	s.NoError(err)
	s.Equal(expense.ID, found.ID)

	found, err = s.repo.GetByNameAndType("Otros", models.TransactionTypeIncome)
	s.NoError(err)
	s.Equal(income.ID, found.ID)

	_, err = s.repo.GetByNameAndType("Otros", "missing")
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_List_OrderedByTypeThenName() {
	s.createCategory("Transporte", models.TransactionTypeExpense)
	s.createCategory("Comida", models.TransactionTypeExpense)
	s.createCategory("Salario", models.TransactionTypeIncome)

	categories, err := s.repo.List()
	s.NoError(err)
	s.Require().Len(categories, 3)
	s.Equal("Comida", categories[0].Name)
	s.Equal("Transporte", categories[1].Name)
	s.Equal("Salario", categories[2].Name)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_ListByType() {
	s.createCategory("Comida", models.TransactionTypeExpense)
	s.createCategory("Salario", models.TransactionTypeIncome)

	categories, err := s.repo.ListByType(models.TransactionTypeIncome)
	s.NoError(err)
	s.Require().Len(categories, 1)
	s.Equal("Salario", categories[0].Name)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Update() {
	category := s.createCategory("Comida", models.TransactionTypeExpense)

	category.Name = "Restaurantes"
	category.Color = "#22c55e"
	err := s.repo.Update(category)
	s.NoError(err)

	updated, err := s.repo.GetByID(category.ID)
	s.NoError(err)
	s.Equal("Restaurantes", updated.Name)
	s.Equal("#22c55e", updated.Color)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Update_NotFound() {
	err := s.repo.Update(&models.Category{
		ID:   uuid.New(),
		Name: "Ghost",
		Type: models.TransactionTypeExpense,
	})
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Delete() {
	category := s.createCategory("Comida", models.TransactionTypeExpense)

	err := s.repo.Delete(category.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(category.ID)
	s.Equal(ErrCategoryNotFound, err)

	err = s.repo.Delete(category.ID)
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Delete_InUse() {
	category := s.createCategory("Comida", models.TransactionTypeExpense)
	user := database.CreateTestUser(s.T(), s.db, "owner@example.com")

	transaction := &models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.RequireFromString("25.00"),
		Date:       mustDate(s.T(), "2025-04-01"),
		CategoryID: category.ID,
	}
	s.Require().NoError(s.db.Create(transaction).Error)

	err := s.repo.Delete(category.ID)
	s.Equal(ErrCategoryInUse, err)

	// Category survives the refused delete
	_, err = s.repo.GetByID(category.ID)
	s.NoError(err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_CountTransactions() {
	category := s.createCategory("Comida", models.TransactionTypeExpense)
	user := database.CreateTestUser(s.T(), s.db, "count@example.com")

	count, err := s.repo.CountTransactions(category.ID)
	s.NoError(err)
	s.Equal(int64(0), count)

	for i := 0; i < 2; i++ {
		transaction := &models.Transaction{
			UserID:     user.ID,
			Type:       models.TransactionTypeExpense,
			Amount:     decimal.RequireFromString("10.00"),
			Date:       mustDate(s.T(), "2025-04-01"),
			CategoryID: category.ID,
		}
		s.Require().NoError(s.db.Create(transaction).Error)
	}

	count, err = s.repo.CountTransactions(category.ID)
	s.NoError(err)
	s.Equal(int64(2), count)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Count() {
	s.createCategory("Comida", models.TransactionTypeExpense)
	s.createCategory("Salario", models.TransactionTypeIncome)

	count, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(2), count)
}
