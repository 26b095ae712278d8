package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	ErrInvalidCategoryType  = errors.New("category type must be income or expense")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrInvalidCategoryColor = errors.New("category color must be a hex value like #ef4444")
)

// Category is a reference tag classifying a transaction's purpose.
// Each category is valid for exactly one transaction type; transactions
// reference categories but never own them.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name_type" json:"name"`
	Type      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_name_type" json:"type"`
	Icon      string    `gorm:"type:varchar(16)" json:"icon"`
	Color     string    `gorm:"type:varchar(7)" json:"color"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameRequired
	}
	if !IsValidTransactionType(c.Type) {
		return ErrInvalidCategoryType
	}
	if c.Color != "" && !colorRegex.MatchString(c.Color) {
		return ErrInvalidCategoryColor
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
