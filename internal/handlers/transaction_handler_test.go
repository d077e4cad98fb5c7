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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *TransactionHandler
	service services.LedgerServiceInterface
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.db = database.SetupTestDB(s.T())
	repo := repositories.NewLedgerRepository(s.db.DB, slog.Default())
	s.service = services.NewLedgerService(repo, services.NewNoopMetrics(), slog.Default())
	s.handler = NewTransactionHandler(s.service)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions",
		`{"type":"expense","amount":25.50,"category":"Food","description":"Lunch"}`)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotEqual(uuid.Nil, response.ID)
	s.Equal("expense", response.Type)
	s.Equal("25.5", response.Amount)
	s.False(response.Date.IsZero())
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_InvalidType() {
	c, _ := s.newContext(http.MethodPost, "/api/v1/transactions",
		`{"type":"transfer","amount":25,"category":"Food"}`)

	err := s.handler.CreateTransaction(c)

	// Validation errors bubble to the HTTP error handler.
	s.Error(err)
	s.Empty(s.service.Ledger().Transactions)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_MissingAmount() {
	c, _ := s.newContext(http.MethodPost, "/api/v1/transactions",
		`{"type":"income","category":"Salary"}`)

	s.Error(s.handler.CreateTransaction(c))
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_MalformedBody() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/transactions", `{not json`)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions() {
	c, _ := s.newContext(http.MethodPost, "/api/v1/transactions",
		`{"type":"income","amount":1000,"category":"Salary"}`)
	s.Require().NoError(s.handler.CreateTransaction(c))

	c, rec := s.newContext(http.MethodGet, "/api/v1/transactions", "")
	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(1, response.Total)
	s.Len(response.Transactions, 1)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_RemovesEntry() {
	created, err := s.service.AddTransaction(testExpense())
	s.Require().NoError(err)

	c, rec := s.newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	s.Require().NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(s.service.Ledger().Transactions)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_UnknownIDSucceeds() {
	c, rec := s.newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	s.Require().NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_InvalidID() {
	c, rec := s.newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.Require().NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_003", response.Error.Code)
}
