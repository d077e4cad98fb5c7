package handlers

import (
	"fmt"
	"time"

	"wallet-api/internal/dto"
	"wallet-api/internal/models"

	"github.com/labstack/echo/v4"
)

// parseMonthParam parses the optional ?month=YYYY-MM query parameter. A zero
// time means the current month.
func parseMonthParam(c echo.Context) (time.Time, error) {
	monthStr := c.QueryParam("month")
	if monthStr == "" {
		return time.Time{}, nil
	}

	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month format, use YYYY-MM")
	}

	return month, nil
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// Shared model-to-DTO conversions used by more than one handler

func toTransactionResponse(transaction *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          transaction.ID,
		Type:        transaction.Type,
		Amount:      transaction.Amount.String(),
		Category:    transaction.Category,
		Description: transaction.Description,
		Date:        transaction.Date,
	}
}

func toTransactionResponses(transactions []models.Transaction) []dto.TransactionResponse {
	result := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		result = append(result, toTransactionResponse(&transactions[i]))
	}
	return result
}

func toGoalResponse(goal *models.Goal) dto.GoalResponse {
	return dto.GoalResponse{
		ID:            goal.ID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.String(),
		CurrentAmount: goal.CurrentAmount.String(),
		Remaining:     goal.Remaining().String(),
		Progress:      goal.Progress().StringFixed(1),
		IsReached:     goal.IsReached(),
		Deadline:      goal.Deadline,
		CreatedAt:     goal.CreatedAt,
	}
}

func toFixedChargeResponse(charge *models.FixedCharge) dto.FixedChargeResponse {
	return dto.FixedChargeResponse{
		ID:         charge.ID,
		Name:       charge.Name,
		Amount:     charge.Amount.String(),
		PaymentDay: charge.PaymentDay,
	}
}
