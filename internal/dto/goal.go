package dto

import (
	"time"

	"github.com/google/uuid"
)

// Goal Request DTOs

// CreateGoalRequest contains the data for creating a savings goal
type CreateGoalRequest struct {
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	TargetAmount float64   `json:"targetAmount" validate:"required,positive_amount"`
	Deadline     time.Time `json:"deadline" validate:"required"`
}

// UpdateGoalRequest contains the editable goal fields. Omitted fields are
// left untouched. The current amount is not editable here; contributions go
// through their own endpoint so the matching expense is recorded.
type UpdateGoalRequest struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TargetAmount *float64   `json:"targetAmount,omitempty" validate:"omitempty,positive_amount"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// ContributionRequest contains the amount to add to a goal
type ContributionRequest struct {
	Amount float64 `json:"amount" validate:"required,positive_amount"`
}

// Goal Response DTOs

// GoalResponse represents a savings goal with its derived progress
type GoalResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  string    `json:"targetAmount"`
	CurrentAmount string    `json:"currentAmount"`
	Remaining     string    `json:"remaining"`
	Progress      string    `json:"progress"`
	IsReached     bool      `json:"isReached"`
	Deadline      time.Time `json:"deadline"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListGoalsResponse represents all savings goals
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
	Total int            `json:"total"`
}

// ContributionResponse carries the updated goal together with the expense
// recorded for the contribution
type ContributionResponse struct {
	Goal        GoalResponse        `json:"goal"`
	Transaction TransactionResponse `json:"transaction"`
}

// SavingsAdviceResponse represents the saving pace needed to reach a goal
type SavingsAdviceResponse struct {
	RemainingAmount string             `json:"remainingAmount"`
	DaysLeft        int                `json:"daysLeft"`
	PerDay          string             `json:"perDay"`
	PerWeek         string             `json:"perWeek"`
	PerMonth        string             `json:"perMonth"`
	IsUrgent        bool               `json:"isUrgent"`
	Message         string             `json:"message"`
	Best            BestAdviceResponse `json:"best"`
}

// BestAdviceResponse is the single most useful per-period amount
type BestAdviceResponse struct {
	Amount string `json:"amount"`
	Period string `json:"period"`
}
