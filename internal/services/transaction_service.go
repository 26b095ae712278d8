package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gastai/internal/dto"
	"gastai/internal/models"
	"gastai/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrCategoryNotFound         = errors.New("category not found")
	ErrCategoryTypeMismatch     = errors.New("category type does not match transaction type")
	ErrTransactionAmountInvalid = errors.New("transaction amount must be greater than zero")
)

// TransactionService handles ledger business logic. All reads and writes are
// scoped to the owning user at the repository level, so a record owned by
// another user is indistinguishable from a missing one.
type TransactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Create records a new transaction for the user
func (s *TransactionService) Create(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	date, err := s.resolveEntry(req.Type, req.Date, req.CategoryID)
	if err != nil {
		s.metrics.RecordTransactionMutation("create", "rejected")
		return nil, err
	}

	if req.Amount.IsNegative() || req.Amount.IsZero() {
		s.metrics.RecordTransactionMutation("create", "rejected")
		return nil, ErrTransactionAmountInvalid
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		CategoryID:  req.CategoryID,
		IsMonthly:   req.IsMonthly,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		s.metrics.RecordTransactionMutation("create", "error")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	created, err := s.transactionRepo.GetByIDAndUser(transaction.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transaction: %w", err)
	}

	s.metrics.RecordTransactionMutation("create", "success")
	s.logger.Info("transaction created",
		"transaction_id", created.ID,
		"user_id", userID,
		"type", created.Type)

	return created, nil
}

// GetByID returns a single transaction owned by the user
func (s *TransactionService) GetByID(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByIDAndUser(transactionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// List returns all of the user's transactions, newest first
func (s *TransactionService) List(userID uuid.UUID) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Update replaces the full state of a transaction owned by the user
func (s *TransactionService) Update(userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	existing, err := s.transactionRepo.GetByIDAndUser(transactionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	date, err := s.resolveEntry(req.Type, req.Date, req.CategoryID)
	if err != nil {
		s.metrics.RecordTransactionMutation("update", "rejected")
		return nil, err
	}

	if req.Amount.IsNegative() || req.Amount.IsZero() {
		s.metrics.RecordTransactionMutation("update", "rejected")
		return nil, ErrTransactionAmountInvalid
	}

	existing.Type = req.Type
	existing.Amount = req.Amount
	existing.Description = req.Description
	existing.Date = date
	existing.CategoryID = req.CategoryID
	existing.IsMonthly = req.IsMonthly

	if err := s.transactionRepo.Update(existing); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		s.metrics.RecordTransactionMutation("update", "error")
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	updated, err := s.transactionRepo.GetByIDAndUser(transactionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transaction: %w", err)
	}

	s.metrics.RecordTransactionMutation("update", "success")
	s.logger.Info("transaction updated", "transaction_id", transactionID, "user_id", userID)

	return updated, nil
}

// Delete removes a transaction owned by the user
func (s *TransactionService) Delete(userID, transactionID uuid.UUID) error {
	if err := s.transactionRepo.DeleteByIDAndUser(transactionID, userID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		s.metrics.RecordTransactionMutation("delete", "error")
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.metrics.RecordTransactionMutation("delete", "success")
	s.logger.Info("transaction deleted", "transaction_id", transactionID, "user_id", userID)

	return nil
}

// resolveEntry parses the date and checks that the category exists and its
// type agrees with the entry type.
func (s *TransactionService) resolveEntry(transactionType, rawDate string, categoryID uuid.UUID) (time.Time, error) {
	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", rawDate, err)
	}

	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return time.Time{}, ErrCategoryNotFound
		}
		return time.Time{}, fmt.Errorf("failed to get category: %w", err)
	}

	if category.Type != transactionType {
		return time.Time{}, ErrCategoryTypeMismatch
	}

	return date, nil
}
