package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wallet-api/internal/database"
	"wallet-api/internal/dto"
	"wallet-api/internal/repositories"
	"wallet-api/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type stubRelay struct {
	sent []*services.EmailMessage
	err  error
}

func (r *stubRelay) Send(message *services.EmailMessage) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, message)
	return nil
}

type BackupHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	relay   *stubRelay
	handler *BackupHandler
	ledger  services.LedgerServiceInterface
}

func TestBackupHandlerSuite(t *testing.T) {
	suite.Run(t, new(BackupHandlerTestSuite))
}

func (s *BackupHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.db = database.SetupTestDB(s.T())
	repo := repositories.NewLedgerRepository(s.db.DB, slog.Default())
	metrics := services.NewNoopMetrics()
	logger := slog.Default()

	s.relay = &stubRelay{}
	s.ledger = services.NewLedgerService(repo, metrics, logger)
	backupService := services.NewBackupService(repo, s.relay, metrics, logger,
		"Wallet <backup@wallet.local>", "Wallet backup")
	s.handler = NewBackupHandler(backupService, s.ledger)
}

func (s *BackupHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BackupHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *BackupHandlerTestSuite) TestExport_DownloadsDocument() {
	_, err := s.ledger.AddTransaction(testExpense())
	s.Require().NoError(err)

	c, rec := s.newContext(http.MethodGet, "/api/v1/backup/export", "")

	s.Require().NoError(s.handler.Export(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Disposition"), "wallet-backup-")
	s.True(json.Valid(rec.Body.Bytes()))
}

func (s *BackupHandlerTestSuite) TestImport_ReplacesDocument() {
	_, err := s.ledger.AddTransaction(testExpense())
	s.Require().NoError(err)

	c, rec := s.newContext(http.MethodPost, "/api/v1/backup/import",
		`{"transactions":[],"goals":[],"fixedCharges":[],"monthlyBudget":"0"}`)

	s.Require().NoError(s.handler.Import(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ImportResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(0, response.Transactions)
	s.Empty(s.ledger.Ledger().Transactions)
}

func (s *BackupHandlerTestSuite) TestImport_InvalidJSONLeavesDocumentUntouched() {
	_, err := s.ledger.AddTransaction(testExpense())
	s.Require().NoError(err)

	c, rec := s.newContext(http.MethodPost, "/api/v1/backup/import", `{broken`)

	s.Require().NoError(s.handler.Import(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("BACKUP_001", response.Error.Code)
	s.Len(s.ledger.Ledger().Transactions, 1)
}

func (s *BackupHandlerTestSuite) TestImport_UnknownFieldRejected() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/backup/import",
		`{"transactions":[],"accounts":[]}`)

	s.Require().NoError(s.handler.Import(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("BACKUP_002", response.Error.Code)
}

func (s *BackupHandlerTestSuite) TestEmail_SendsThroughRelay() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/backup/email",
		`{"to":"user@example.com"}`)

	s.Require().NoError(s.handler.Email(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Len(s.relay.sent, 1)
}

func (s *BackupHandlerTestSuite) TestEmail_InvalidAddress() {
	c, _ := s.newContext(http.MethodPost, "/api/v1/backup/email",
		`{"to":"not-an-email"}`)

	s.Error(s.handler.Email(c))
	s.Empty(s.relay.sent)
}

func (s *BackupHandlerTestSuite) TestEmail_RelayFailure() {
	s.relay.err = services.ErrRelayNotConfigured

	c, rec := s.newContext(http.MethodPost, "/api/v1/backup/email",
		`{"to":"user@example.com"}`)

	s.Require().NoError(s.handler.Email(c))
	s.Equal(http.StatusBadGateway, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("BACKUP_003", response.Error.Code)
}
