package repositories

import (
	"errors"
	"fmt"
	"time"

	"gastai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByIDAndUser retrieves a transaction by ID, scoped to its owner.
// A transaction owned by another user is indistinguishable from an absent
// one: both return ErrTransactionNotFound.
func (r *transactionRepository) GetByIDAndUser(id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// ListByUser retrieves all transactions for a user, newest date first
func (r *transactionRepository) ListByUser(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// ListByUserAndType retrieves all of a user's transactions of one type
func (r *transactionRepository) ListByUserAndType(userID uuid.UUID, transactionType string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ? AND type = ?", userID, transactionType).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions by type: %w", err)
	}
	return transactions, nil
}

// ListByUserAndTypeSince retrieves a user's transactions of one type with
// date >= since, ascending by date
func (r *transactionRepository) ListByUserAndTypeSince(userID uuid.UUID, transactionType string, since time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ? AND type = ? AND date >= ?", userID, transactionType, since).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions since %s: %w", since.Format("2006-01-02"), err)
	}
	return transactions, nil
}

// ListRecentByUser retrieves a user's most recent transactions
func (r *transactionRepository) ListRecentByUser(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	return transactions, nil
}

// Update replaces the mutable fields of an existing transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
		Updates(map[string]interface{}{
			"type":        transaction.Type,
			"amount":      transaction.Amount,
			"description": transaction.Description,
			"date":        transaction.Date,
			"category_id": transaction.CategoryID,
			"is_monthly":  transaction.IsMonthly,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// DeleteByIDAndUser hard-deletes a transaction, scoped to its owner.
// A second delete of the same id reports ErrTransactionNotFound.
func (r *transactionRepository) DeleteByIDAndUser(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// CountByUser returns the number of transactions a user has registered
func (r *transactionRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// CountByUserAndType returns the number of a user's transactions of one type
func (r *transactionRepository) CountByUserAndType(userID uuid.UUID, transactionType string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, transactionType).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions by type: %w", err)
	}
	return count, nil
}
