package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingChargeName     = errors.New("fixed charge name is required")
	ErrInvalidChargeAmount   = errors.New("fixed charge amount must be positive")
	ErrInvalidPaymentDayHint = errors.New("fixed charge payment day must be between 1 and 31")
)

// FixedCharge is a recurring monthly deduction (rent, subscriptions, loan
// payments). Charges apply uniformly every month; there is no per-month
// instancing.
type FixedCharge struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	// PaymentDay is an optional day-of-month hint for when the charge is
	// usually debited. Zero means unset.
	PaymentDay int `json:"paymentDay,omitempty"`
}

// Validate validates the fixed charge fields
func (c *FixedCharge) Validate() error {
	if c.Name == "" {
		return ErrMissingChargeName
	}

	if !c.Amount.IsPositive() {
		return ErrInvalidChargeAmount
	}

	if c.PaymentDay < 0 || c.PaymentDay > 31 {
		return ErrInvalidPaymentDayHint
	}

	return nil
}
