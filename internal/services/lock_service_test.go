package services

import (
	"log/slog"
	"testing"

	"wallet-api/internal/models"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type LockServiceTestSuite struct {
	suite.Suite
	repo    *fakeLedgerRepo
	tokens  TokenServiceInterface
	service LockServiceInterface
}

func TestLockServiceSuite(t *testing.T) {
	suite.Run(t, new(LockServiceTestSuite))
}

func (s *LockServiceTestSuite) SetupTest() {
	s.repo = newFakeLedgerRepo()
	s.tokens = NewTokenService(testSessionConfig(s.T()))
	s.service = NewLockService(
		s.repo, s.tokens, NewNoDeviceAuthenticator(), NewNoopMetrics(), slog.Default(),
		true, bcrypt.MinCost, 4, 8,
	)
}

func (s *LockServiceTestSuite) TestStatus_FreshInstall() {
	status := s.service.Status()

	s.True(status.Enabled)
	s.False(status.PinConfigured)
	s.False(status.DeviceAvailable)
}

func (s *LockServiceTestSuite) TestSetPin_StoresHash() {
	s.Require().NoError(s.service.SetPin("1234"))

	status := s.service.Status()
	s.True(status.PinConfigured)

	// The raw PIN must never be stored.
	hash, err := s.repo.LoadValue(models.DocumentKeyPinHash)
	s.NoError(err)
	s.NotEqual("1234", hash)
}

func (s *LockServiceTestSuite) TestSetPin_RejectsBadFormats() {
	s.ErrorIs(s.service.SetPin("12"), ErrPinInvalid)
	s.ErrorIs(s.service.SetPin("123456789"), ErrPinInvalid)
	s.ErrorIs(s.service.SetPin("12ab"), ErrPinInvalid)
}

func (s *LockServiceTestSuite) TestUnlockWithPin_Success() {
	s.Require().NoError(s.service.SetPin("1234"))

	token, expiresAt, err := s.service.UnlockWithPin("1234")

	s.NoError(err)
	s.NotEmpty(token)
	s.False(expiresAt.IsZero())

	claims, err := s.tokens.ValidateSessionToken(token)
	s.NoError(err)
	s.Equal(models.UnlockMethodPin, claims.Method)
}

func (s *LockServiceTestSuite) TestUnlockWithPin_Incorrect() {
	s.Require().NoError(s.service.SetPin("1234"))

	_, _, err := s.service.UnlockWithPin("9999")
	s.ErrorIs(err, ErrPinIncorrect)
}

func (s *LockServiceTestSuite) TestUnlockWithPin_NotConfigured() {
	_, _, err := s.service.UnlockWithPin("1234")
	s.ErrorIs(err, ErrPinNotSet)
}

func (s *LockServiceTestSuite) TestUnlockWithDevice_Success() {
	token, _, err := s.service.UnlockWithDevice(AuthResult{Success: true})

	s.NoError(err)

	claims, err := s.tokens.ValidateSessionToken(token)
	s.NoError(err)
	s.Equal(models.UnlockMethodDevice, claims.Method)
}

func (s *LockServiceTestSuite) TestUnlockWithDevice_NotAvailableProceedsUnlocked() {
	token, _, err := s.service.UnlockWithDevice(AuthResult{Success: false, NotAvailable: true})

	s.NoError(err)

	claims, err := s.tokens.ValidateSessionToken(token)
	s.NoError(err)
	s.Equal(models.UnlockMethodNone, claims.Method)
}

func (s *LockServiceTestSuite) TestUnlockWithDevice_FailureStaysLocked() {
	_, _, err := s.service.UnlockWithDevice(AuthResult{Success: false, Code: "authentication_failed"})

	s.ErrorIs(err, ErrAuthenticationFailed)
	s.ErrorContains(err, "authentication_failed")
}
