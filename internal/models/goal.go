package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingGoalName       = errors.New("goal name is required")
	ErrInvalidTargetAmount   = errors.New("goal target amount must be positive")
	ErrNegativeCurrentAmount = errors.New("goal current amount must not be negative")
	ErrMissingDeadline       = errors.New("goal deadline is required")
	ErrInvalidContribution   = errors.New("goal contribution must be positive")
)

// Goal is a savings goal tracked in the ledger document. CurrentAmount is
// only ever advanced by a goal contribution, which records a matching
// savings expense in the same document write.
type Goal struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      time.Time       `json:"deadline"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate validates the goal fields
func (g *Goal) Validate() error {
	if g.Name == "" {
		return ErrMissingGoalName
	}

	if !g.TargetAmount.IsPositive() {
		return ErrInvalidTargetAmount
	}

	if g.CurrentAmount.IsNegative() {
		return ErrNegativeCurrentAmount
	}

	if g.Deadline.IsZero() {
		return ErrMissingDeadline
	}

	return nil
}

// IsReached returns true if the goal target has been met or exceeded
func (g *Goal) IsReached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Remaining returns the amount still missing to reach the target. Never
// negative.
func (g *Goal) Remaining() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Progress returns the completion ratio in percent, capped at 100.
func (g *Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	hundred := decimal.NewFromInt(100)
	progress := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
	if progress.GreaterThan(hundred) {
		return hundred
	}
	return progress
}
