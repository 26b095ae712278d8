package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Validate(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		wantErr  error
	}{
		{
			name:     "valid expense category",
			category: Category{Name: "Comida", Type: TransactionTypeExpense, Icon: "🍔", Color: "#ef4444"},
		},
		{
			name:     "valid income category without color",
			category: Category{Name: "Salario", Type: TransactionTypeIncome},
		},
		{
			name:     "missing name",
			category: Category{Type: TransactionTypeExpense},
			wantErr:  ErrCategoryNameRequired,
		},
		{
			name:     "invalid type",
			category: Category{Name: "Comida", Type: "savings"},
			wantErr:  ErrInvalidCategoryType,
		},
		{
			name:     "malformed color",
			category: Category{Name: "Comida", Type: TransactionTypeExpense, Color: "red"},
			wantErr:  ErrInvalidCategoryColor,
		},
		{
			name:     "short hex color",
			category: Category{Name: "Comida", Type: TransactionTypeExpense, Color: "#fff"},
			wantErr:  ErrInvalidCategoryColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("income"))
	assert.True(t, IsValidTransactionType("expense"))
	assert.False(t, IsValidTransactionType("Income"))
	assert.False(t, IsValidTransactionType("transfer"))
	assert.False(t, IsValidTransactionType(""))
}
