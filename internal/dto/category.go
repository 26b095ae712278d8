package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCategoryRequest contains the data for a new category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Type  string `json:"type" validate:"required,transaction_type"`
	Icon  string `json:"icon" validate:"max=16"`
	Color string `json:"color" validate:"omitempty,hex_color"`
}

// UpdateCategoryRequest contains the replacement state for a category
type UpdateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Type  string `json:"type" validate:"required,transaction_type"`
	Icon  string `json:"icon" validate:"max=16"`
	Color string `json:"color" validate:"omitempty,hex_color"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
