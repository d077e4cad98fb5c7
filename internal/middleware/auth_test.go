package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-api/internal/config"
	"wallet-api/internal/errors"
	"wallet-api/internal/models"
	"wallet-api/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RequireUnlockTestSuite struct {
	suite.Suite
	echo   *echo.Echo
	tokens services.TokenServiceInterface
}

func TestRequireUnlockSuite(t *testing.T) {
	suite.Run(t, new(RequireUnlockTestSuite))
}

func (s *RequireUnlockTestSuite) SetupTest() {
	s.echo = echo.New()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(s.T(), err)

	s.tokens = services.NewTokenService(&config.SessionConfig{
		TokenDuration: time.Hour,
		PrivateKey:    key,
		PublicKey:     &key.PublicKey,
		Issuer:        "wallet-api",
		LockEnabled:   true,
	})
}

func (s *RequireUnlockTestSuite) invoke(enabled bool, authHeader string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequireUnlock(s.tokens, enabled)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return rec, handler(c)
}

func (s *RequireUnlockTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *RequireUnlockTestSuite) TestDisabledLock_PassesThrough() {
	rec, err := s.invoke(false, "")

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RequireUnlockTestSuite) TestMissingHeader() {
	rec, err := s.invoke(true, "")

	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("LOCK_001", s.errorCode(rec))
}

func (s *RequireUnlockTestSuite) TestValidToken() {
	token, _, err := s.tokens.GenerateSessionToken(models.UnlockMethodPin)
	s.Require().NoError(err)

	rec, err := s.invoke(true, "Bearer "+token)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RequireUnlockTestSuite) TestGarbageToken() {
	rec, err := s.invoke(true, "Bearer not.a.token")

	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("LOCK_003", s.errorCode(rec))
}

func (s *RequireUnlockTestSuite) TestMalformedHeader() {
	rec, err := s.invoke(true, "Basic abc")

	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("LOCK_003", s.errorCode(rec))
}
