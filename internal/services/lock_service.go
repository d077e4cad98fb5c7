package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wallet-api/internal/models"
	"wallet-api/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPinNotSet            = errors.New("no PIN has been configured")
	ErrPinIncorrect         = errors.New("incorrect PIN")
	ErrPinInvalid           = errors.New("PIN must be numeric and within the configured length")
	ErrAuthenticationFailed = errors.New("device authentication failed")
)

// lockService implements LockServiceInterface.
//
// Outcome policy: a successful device prompt and a "no security method
// configured" outcome both unlock the wallet; any other outcome keeps it
// locked and lets the user retry.
type lockService struct {
	repo          repositories.LedgerRepositoryInterface
	tokens        TokenServiceInterface
	authenticator DeviceAuthenticatorInterface
	metrics       MetricsRecorderInterface
	logger        *slog.Logger
	enabled       bool
	bcryptCost    int
	pinMinLength  int
	pinMaxLength  int
}

// NewLockService creates the device-lock gate service
func NewLockService(
	repo repositories.LedgerRepositoryInterface,
	tokens TokenServiceInterface,
	authenticator DeviceAuthenticatorInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	enabled bool,
	bcryptCost, pinMinLength, pinMaxLength int,
) LockServiceInterface {
	return &lockService{
		repo:          repo,
		tokens:        tokens,
		authenticator: authenticator,
		metrics:       metrics,
		logger:        logger,
		enabled:       enabled,
		bcryptCost:    bcryptCost,
		pinMinLength:  pinMinLength,
		pinMaxLength:  pinMaxLength,
	}
}

// Status describes the current lock configuration
func (s *lockService) Status() LockStatus {
	_, err := s.repo.LoadValue(models.DocumentKeyPinHash)
	return LockStatus{
		Enabled:         s.enabled,
		PinConfigured:   err == nil,
		DeviceAvailable: s.authenticator.CheckAvailability(),
	}
}

// SetPin validates and stores the bcrypt hash of a fallback PIN
func (s *lockService) SetPin(pin string) error {
	if err := s.validatePin(pin); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}

	if err := s.repo.SaveValue(models.DocumentKeyPinHash, string(hash)); err != nil {
		return fmt.Errorf("failed to store PIN: %w", err)
	}

	s.logger.Info("PIN configured")
	return nil
}

// UnlockWithPin checks the fallback PIN and issues a session token
func (s *lockService) UnlockWithPin(pin string) (string, time.Time, error) {
	hash, err := s.repo.LoadValue(models.DocumentKeyPinHash)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return "", time.Time{}, ErrPinNotSet
		}
		return "", time.Time{}, fmt.Errorf("failed to read PIN: %w", err)
	}

	// bcrypt comparison is timing-attack resistant.
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) != nil {
		s.recordUnlock(models.UnlockMethodPin, "failed")
		return "", time.Time{}, ErrPinIncorrect
	}

	s.recordUnlock(models.UnlockMethodPin, "success")
	return s.tokens.GenerateSessionToken(models.UnlockMethodPin)
}

// UnlockWithDevice applies the outcome policy to a platform authentication
// result. The prompt itself runs on the device; the service only judges the
// outcome it reports.
func (s *lockService) UnlockWithDevice(result AuthResult) (string, time.Time, error) {
	if result.Success {
		s.recordUnlock(models.UnlockMethodDevice, "success")
		return s.tokens.GenerateSessionToken(models.UnlockMethodDevice)
	}

	// No security method configured on the device: proceed unlocked.
	if result.NotAvailable {
		s.recordUnlock(models.UnlockMethodNone, "not_available")
		return s.tokens.GenerateSessionToken(models.UnlockMethodNone)
	}

	s.recordUnlock(models.UnlockMethodDevice, "failed")
	s.logger.Warn("device authentication failed", "code", result.Code)

	if result.Code != "" {
		return "", time.Time{}, fmt.Errorf("%w: %s", ErrAuthenticationFailed, result.Code)
	}
	return "", time.Time{}, ErrAuthenticationFailed
}

func (s *lockService) validatePin(pin string) error {
	if len(pin) < s.pinMinLength || len(pin) > s.pinMaxLength {
		return ErrPinInvalid
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrPinInvalid
		}
	}
	return nil
}

func (s *lockService) recordUnlock(method, status string) {
	s.metrics.IncrementCounter("unlock.event", map[string]string{"method": method, "status": status})
}

// noDeviceAuthenticator is the default platform collaborator for
// environments without a credential prompt. Never available, so the policy
// falls through to "proceed unlocked" or the PIN fallback.
type noDeviceAuthenticator struct{}

// NewNoDeviceAuthenticator creates an authenticator for platforms without
// a credential prompt
func NewNoDeviceAuthenticator() DeviceAuthenticatorInterface {
	return &noDeviceAuthenticator{}
}

func (a *noDeviceAuthenticator) CheckAvailability() bool {
	return false
}

func (a *noDeviceAuthenticator) Authenticate() AuthResult {
	return AuthResult{Success: false, NotAvailable: true}
}
