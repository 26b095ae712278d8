package services

import (
	"errors"
	"fmt"
	"log/slog"

	"gastai/internal/dto"
	"gastai/internal/models"
	"gastai/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCategoryAlreadyExists = errors.New("category with this name and type already exists")
	ErrCategoryInUse         = errors.New("category is referenced by existing transactions")
)

// CategoryService handles the shared category catalog
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *slog.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create adds a new category to the catalog. Name plus type must be unique.
func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*models.Category, error) {
	existing, err := s.categoryRepo.GetByNameAndType(req.Name, req.Type)
	if err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, ErrCategoryAlreadyExists
	}

	category := &models.Category{
		Name:  req.Name,
		Type:  req.Type,
		Icon:  req.Icon,
		Color: req.Color,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("category created", "category_id", category.ID, "name", category.Name, "type", category.Type)

	return category, nil
}

// GetByID returns a single category
func (s *CategoryService) GetByID(id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// List returns the catalog, optionally filtered by transaction type
func (s *CategoryService) List(categoryType string) ([]models.Category, error) {
	if categoryType == "" {
		categories, err := s.categoryRepo.List()
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		return categories, nil
	}

	if !models.IsValidTransactionType(categoryType) {
		return nil, fmt.Errorf("invalid category type %q", categoryType)
	}

	categories, err := s.categoryRepo.ListByType(categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Update replaces a category's attributes
func (s *CategoryService) Update(id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	duplicate, err := s.categoryRepo.GetByNameAndType(req.Name, req.Type)
	if err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if duplicate != nil && duplicate.ID != id {
		return nil, ErrCategoryAlreadyExists
	}

	category.Name = req.Name
	category.Type = req.Type
	category.Icon = req.Icon
	category.Color = req.Color

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.logger.Info("category updated", "category_id", id)

	return category, nil
}

// Delete removes a category that no transaction references
func (s *CategoryService) Delete(id uuid.UUID) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return ErrCategoryNotFound
		case errors.Is(err, repositories.ErrCategoryInUse):
			return ErrCategoryInUse
		default:
			return fmt.Errorf("failed to delete category: %w", err)
		}
	}

	s.logger.Info("category deleted", "category_id", id)

	return nil
}
