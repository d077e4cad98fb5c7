package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	// CategorySavings tags the synthetic expense recorded by a goal contribution.
	CategorySavings = "Savings"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
	ErrMissingCategory        = errors.New("transaction category is required")
	ErrMissingDate            = errors.New("transaction date is required")
)

// ExpenseCategories is the suggested (non-enforced) expense category list.
var ExpenseCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Health",
	"Leisure",
	"Housing",
	"Bills",
	"Education",
	CategorySavings,
	"Other",
}

// IncomeCategories is the suggested (non-enforced) income category list.
var IncomeCategories = []string{
	"Salary",
	"Freelance",
	"Sale",
	"Investment",
	"Gift",
	"Refund",
	"Bonus",
	"Other",
}

// Transaction is a single income or expense entry in the ledger document.
// Transactions are immutable once recorded; they are only ever appended or
// removed by identifier.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.Category == "" {
		return ErrMissingCategory
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

// IsIncome returns true if the transaction is an income entry
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true if the transaction is an expense entry
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// InMonth reports whether the transaction date falls inside the calendar
// month containing ref.
func (t *Transaction) InMonth(ref time.Time) bool {
	y, m, _ := ref.Date()
	ty, tm, _ := t.Date.Date()
	return y == ty && m == tm
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
