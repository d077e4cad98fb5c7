package dto

import "github.com/google/uuid"

// Fixed Charge Request DTOs

// CreateFixedChargeRequest contains the data for adding a recurring charge
type CreateFixedChargeRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Amount     float64 `json:"amount" validate:"required,positive_amount"`
	PaymentDay int     `json:"paymentDay,omitempty" validate:"omitempty,payment_day"`
}

// UpdateFixedChargeRequest contains the editable fixed charge fields.
// Omitted fields are left untouched.
type UpdateFixedChargeRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Amount     *float64 `json:"amount,omitempty" validate:"omitempty,positive_amount"`
	PaymentDay *int     `json:"paymentDay,omitempty" validate:"omitempty,payment_day"`
}

// Fixed Charge Response DTOs

// FixedChargeResponse represents a recurring monthly charge
type FixedChargeResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Amount     string    `json:"amount"`
	PaymentDay int       `json:"paymentDay,omitempty"`
}

// ListFixedChargesResponse represents all fixed charges with their monthly total
type ListFixedChargesResponse struct {
	FixedCharges []FixedChargeResponse `json:"fixedCharges"`
	Total        int                   `json:"total"`
	MonthlyTotal string                `json:"monthlyTotal"`
}
