package handlers

import (
	"time"

	"wallet-api/internal/models"

	"github.com/shopspring/decimal"
)

// Shared fixtures for handler tests.

func testExpense() models.Transaction {
	return models.Transaction{
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(25),
		Category:    "Food",
		Description: "Lunch",
		Date:        time.Now(),
	}
}

func testGoal() models.Goal {
	return models.Goal{
		Name:         "Vacation",
		TargetAmount: decimal.NewFromInt(1000),
		Deadline:     time.Now().AddDate(0, 6, 0),
	}
}
