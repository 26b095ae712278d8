package repositories

import (
	"time"

	"gastai/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmailExcluding(email string, excludeUserID uuid.UUID) (*models.User, error)
	Update(user *models.User) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByNameAndType(name, categoryType string) (*models.Category, error)
	List() ([]models.Category, error)
	ListByType(categoryType string) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
	CountTransactions(id uuid.UUID) (int64, error)
	Count() (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction
// repository operations. Every read is scoped to an owner user id; the
// aggregation engine consumes the date-bounded list methods and does its
// arithmetic in memory on decimals.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByIDAndUser(id, userID uuid.UUID) (*models.Transaction, error)
	ListByUser(userID uuid.UUID) ([]models.Transaction, error)
	ListByUserAndType(userID uuid.UUID, transactionType string) ([]models.Transaction, error)
	ListByUserAndTypeSince(userID uuid.UUID, transactionType string, since time.Time) ([]models.Transaction, error)
	ListRecentByUser(userID uuid.UUID, limit int) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	DeleteByIDAndUser(id, userID uuid.UUID) error
	CountByUser(userID uuid.UUID) (int64, error)
	CountByUserAndType(userID uuid.UUID, transactionType string) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}
