package handlers

import (
	stderrors "errors"
	"net/http"

	"gastai/internal/dto"
	"gastai/internal/errors"
	"gastai/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles the shared category catalog endpoints. Reads are
// public; mutations require authentication.
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles GET /api/categories with an optional ?type= filter
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.QueryParam("type"))
	if err != nil {
		if stderrors.Is(err, services.ErrCategoryNotFound) {
			return SendError(c, errors.CategoryNotFound)
		}
		// Unknown ?type= values are a client mistake, not a system fault.
		return SendError(c, errors.ValidationInvalidFormat, errors.WithMessage(err.Error()))
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, toCategoryResponse(&categories[i]))
	}

	return SendSuccess(c, http.StatusOK, responses, "")
}

// Get handles GET /api/categories/:id
func (h *CategoryHandler) Get(c echo.Context) error {
	categoryID, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.CategoryNotFound)
	}

	category, err := h.categoryService.GetByID(categoryID)
	if err != nil {
		if stderrors.Is(err, services.ErrCategoryNotFound) {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, toCategoryResponse(category), "")
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		if stderrors.Is(err, services.ErrCategoryAlreadyExists) {
			return SendError(c, errors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, toCategoryResponse(category), "Category created successfully")
}

// Update handles PUT /api/categories/:id
func (h *CategoryHandler) Update(c echo.Context) error {
	categoryID, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.CategoryNotFound)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(categoryID, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrCategoryNotFound):
			return SendError(c, errors.CategoryNotFound)
		case stderrors.Is(err, services.ErrCategoryAlreadyExists):
			return SendError(c, errors.CategoryAlreadyExists)
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccess(c, http.StatusOK, toCategoryResponse(category), "Category updated successfully")
}

// Delete handles DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c echo.Context) error {
	categoryID, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.CategoryNotFound)
	}

	if err := h.categoryService.Delete(categoryID); err != nil {
		switch {
		case stderrors.Is(err, services.ErrCategoryNotFound):
			return SendError(c, errors.CategoryNotFound)
		case stderrors.Is(err, services.ErrCategoryInUse):
			return SendError(c, errors.CategoryInUse)
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccess(c, http.StatusOK, nil, "Category deleted successfully")
}
