package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest contains the data for a new ledger entry. Amount
// arrives as a JSON number or string; decimal handles both without float
// round-off.
type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,transaction_type"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"max=255"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
	IsMonthly   bool            `json:"is_monthly"`
}

// UpdateTransactionRequest contains the full replacement state for an entry.
// Updates are whole-record, matching the edit form.
type UpdateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,transaction_type"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"max=255"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
	IsMonthly   bool            `json:"is_monthly"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          uuid.UUID         `json:"id"`
	Type        string            `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description,omitempty"`
	Date        string            `json:"date"`
	CategoryID  uuid.UUID         `json:"category_id"`
	IsMonthly   bool              `json:"is_monthly"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
