package models

import "github.com/golang-jwt/jwt/v5"

// Unlock methods recorded in a session token.
const (
	UnlockMethodDevice = "device"
	UnlockMethodPin    = "pin"
	UnlockMethodNone   = "none"
)

// SessionClaims represents the claims in an unlock session token
type SessionClaims struct {
	jwt.RegisteredClaims
	// Method records how the session was unlocked: the device credential
	// prompt, the PIN fallback, or none when no security method is set up.
	Method    string `json:"method"`
	TokenType string `json:"token_type"`
}
