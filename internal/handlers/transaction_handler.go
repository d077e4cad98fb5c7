package handlers

import (
	"net/http"
	"strings"

	"wallet-api/internal/dto"
	"wallet-api/internal/errors"
	"wallet-api/internal/models"
	"wallet-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledgerService services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// ListTransactions returns the full transaction history
//
// Method: GET /api/v1/transactions
//
// Success Response: 200 OK with transactions ordered as stored
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	ledger := h.ledgerService.Ledger()

	response := dto.ListTransactionsResponse{
		Transactions: toTransactionResponses(ledger.Transactions),
		Total:        len(ledger.Transactions),
	}

	return c.JSON(http.StatusOK, response)
}

// CreateTransaction records a new income or expense entry
//
// Method: POST /api/v1/transactions
//
// Success Response: 201 Created with the stored transaction
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid request body, LEDGER_002/LEDGER_003 - Invalid amount or type
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction := models.Transaction{
		Type:        strings.ToLower(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}

	created, err := h.ledgerService.AddTransaction(transaction)
	if err != nil {
		switch err {
		case models.ErrNegativeAmount:
			return SendError(c, errors.LedgerInvalidAmount)
		case models.ErrInvalidTransactionType:
			return SendError(c, errors.LedgerInvalidType)
		default:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(created))
}

// DeleteTransaction removes a transaction by id
//
// Method: DELETE /api/v1/transactions/:id
//
// Deleting an unknown id succeeds with no effect; the contract is
// "this entry is gone", not "this entry existed".
//
// Success Response: 204 No Content
//
// Error Responses:
//   - 400: VALIDATION_003 - Invalid transaction ID format
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	h.ledgerService.DeleteTransaction(id)
	return c.NoContent(http.StatusNoContent)
}
