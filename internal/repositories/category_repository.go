package repositories

import (
	"errors"
	"fmt"

	"gastai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category is referenced by existing transactions")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetByNameAndType retrieves a category by its unique (name, type) pair
func (r *categoryRepository) GetByNameAndType(name, categoryType string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ? AND type = ?", name, categoryType).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

// List retrieves all categories ordered by type then name
func (r *categoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("type ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListByType retrieves all categories of a single transaction type
func (r *categoryRepository) ListByType(categoryType string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("type = ?", categoryType).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories by type: %w", err)
	}
	return categories, nil
}

// Update persists changes to an existing category
func (r *categoryRepository) Update(category *models.Category) error {
	result := r.db.Model(&models.Category{}).Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":       category.Name,
			"type":       category.Type,
			"icon":       category.Icon,
			"color":      category.Color,
			"updated_at": category.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category. Categories referenced by transactions cannot
// be deleted.
func (r *categoryRepository) Delete(id uuid.UUID) error {
	inUse, err := r.CountTransactions(id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return ErrCategoryInUse
	}

	result := r.db.Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// CountTransactions returns how many transactions reference a category
func (r *categoryRepository) CountTransactions(id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("category_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count category transactions: %w", err)
	}
	return count, nil
}

// Count returns the total number of categories
func (r *categoryRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}
