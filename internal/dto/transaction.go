package dto

import (
	"time"

	"github.com/google/uuid"
)

// Transaction Request DTOs

// CreateTransactionRequest contains the data for recording a transaction
type CreateTransactionRequest struct {
	Type        string     `json:"type" validate:"required,transaction_type"`
	Amount      float64    `json:"amount" validate:"required,positive_amount"`
	Category    string     `json:"category" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=500"`
	Date        *time.Time `json:"date,omitempty"`
}

// Transaction Response DTOs

// TransactionResponse represents a single ledger transaction
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// ListTransactionsResponse represents the full transaction history
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}
