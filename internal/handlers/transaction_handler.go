package handlers

import (
	stderrors "errors"
	"net/http"

	"gastai/internal/dto"
	"gastai/internal/errors"
	"gastai/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles the ledger CRUD endpoints. Everything here is
// scoped to the authenticated user; records owned by someone else come back
// as 404.
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactions, err := h.transactionService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, toTransactionResponses(transactions), "")
}

// Get handles GET /api/transactions/:id
func (h *TransactionHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.TransactionNotFound)
	}

	transaction, err := h.transactionService.GetByID(userID, transactionID)
	if err != nil {
		if stderrors.Is(err, services.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, toTransactionResponse(transaction), "")
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Create(userID, &req)
	if err != nil {
		return h.mapMutationError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, toTransactionResponse(transaction), "Transaction created successfully")
}

// Update handles PUT /api/transactions/:id
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.TransactionNotFound)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Update(userID, transactionID, &req)
	if err != nil {
		return h.mapMutationError(c, err)
	}

	return SendSuccess(c, http.StatusOK, toTransactionResponse(transaction), "Transaction updated successfully")
}

// Delete handles DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.TransactionNotFound)
	}

	if err := h.transactionService.Delete(userID, transactionID); err != nil {
		if stderrors.Is(err, services.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, nil, "Transaction deleted successfully")
}

func (h *TransactionHandler) mapMutationError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, services.ErrCategoryTypeMismatch):
		return SendError(c, errors.TransactionCategoryMismatch)
	case stderrors.Is(err, services.ErrTransactionAmountInvalid):
		return SendError(c, errors.TransactionInvalidAmount)
	default:
		return SendSystemError(c, err)
	}
}
