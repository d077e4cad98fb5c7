package services

import (
	"time"

	"wallet-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerServiceInterface exposes the mutators over the ledger document.
// Every operation follows the same cycle: load the whole document, change
// one list, save the whole document back.
type LedgerServiceInterface interface {
	Ledger() *models.Ledger

	AddTransaction(transaction models.Transaction) (*models.Transaction, error)
	DeleteTransaction(id uuid.UUID)

	AddGoal(goal models.Goal) (*models.Goal, error)
	UpdateGoal(id uuid.UUID, update GoalUpdate) (*models.Goal, error)
	ApplyGoalContribution(id uuid.UUID, amount decimal.Decimal) (*models.Goal, *models.Transaction, error)
	DeleteGoal(id uuid.UUID)

	AddFixedCharge(charge models.FixedCharge) (*models.FixedCharge, error)
	UpdateFixedCharge(id uuid.UUID, update FixedChargeUpdate) (*models.FixedCharge, error)
	DeleteFixedCharge(id uuid.UUID)
}

// StatsServiceInterface derives aggregate statistics from the ledger.
type StatsServiceInterface interface {
	ComputeStats(referenceMonth time.Time) *models.Stats
	FinancialTips() []string
}

// AdviceServiceInterface computes savings-pace recommendations. Pure
// computation over its inputs and the current date; no I/O.
type AdviceServiceInterface interface {
	CalculateSavingsAdvice(targetAmount, currentAmount decimal.Decimal, deadline time.Time) *models.SavingsAdvice
	BestAdvice(advice *models.SavingsAdvice) models.BestAdvice
}

// CurrencyServiceInterface manages the process-wide display currency.
type CurrencyServiceInterface interface {
	Selected() (models.Currency, bool)
	Select(code string) (models.Currency, error)
	Format(amount decimal.Decimal) string
	Catalogue() []models.Currency
}

// BackupServiceInterface exports, restores and mails the ledger document.
type BackupServiceInterface interface {
	Export() (filename string, data []byte, err error)
	Import(data []byte) error
	EmailBackup(to string) error
}

// LockServiceInterface implements the device-lock gate: PIN fallback plus
// the platform authenticator outcome policy.
type LockServiceInterface interface {
	Status() LockStatus
	SetPin(pin string) error
	UnlockWithPin(pin string) (token string, expiresAt time.Time, err error)
	UnlockWithDevice(result AuthResult) (token string, expiresAt time.Time, err error)
}

// TokenServiceInterface issues and validates unlock session tokens.
type TokenServiceInterface interface {
	GenerateSessionToken(method string) (string, time.Time, error)
	ValidateSessionToken(token string) (*models.SessionClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// DeviceAuthenticatorInterface is the platform credential prompt. The
// service only ever sees it as an availability check plus an outcome.
type DeviceAuthenticatorInterface interface {
	CheckAvailability() bool
	Authenticate() AuthResult
}

// EmailRelayInterface is the outbound mail collaborator. The core's
// obligation ends at producing the message; transport belongs here.
type EmailRelayInterface interface {
	Send(message *EmailMessage) error
}

// SampleDataServiceInterface seeds a demo ledger for development.
type SampleDataServiceInterface interface {
	Seed(transactionCount int) *models.Ledger
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// AuthResult is the outcome of a platform authentication prompt.
type AuthResult struct {
	Success bool `json:"success"`
	// Code carries the platform error code on failure.
	Code string `json:"code,omitempty"`
	// NotAvailable is set when no security method is configured on the
	// device; the policy treats that as "proceed unlocked".
	NotAvailable bool `json:"not_available,omitempty"`
}

// LockStatus describes the current lock configuration.
type LockStatus struct {
	Enabled         bool `json:"enabled"`
	PinConfigured   bool `json:"pin_configured"`
	DeviceAvailable bool `json:"device_available"`
}

// EmailMessage is the payload handed to the email relay.
type EmailMessage struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a base64-encoded file attached to a relay message.
type Attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
