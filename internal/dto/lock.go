package dto

import "time"

// Lock Request DTOs

// SetPinRequest contains the fallback PIN to configure
type SetPinRequest struct {
	Pin string `json:"pin" validate:"required,numeric,min=4,max=8"`
}

// UnlockPinRequest contains the PIN entered by the user
type UnlockPinRequest struct {
	Pin string `json:"pin" validate:"required"`
}

// UnlockDeviceRequest carries the outcome of the platform credential prompt.
// The prompt itself runs on the device; the API only judges the outcome.
type UnlockDeviceRequest struct {
	Success      bool   `json:"success"`
	Code         string `json:"code,omitempty"`
	NotAvailable bool   `json:"notAvailable,omitempty"`
}

// Lock Response DTOs

// SessionTokenResponse contains the unlock session token
type SessionTokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LockStatusResponse describes the current lock configuration
type LockStatusResponse struct {
	Enabled         bool `json:"enabled"`
	PinConfigured   bool `json:"pinConfigured"`
	DeviceAvailable bool `json:"deviceAvailable"`
}
