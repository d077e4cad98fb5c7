package repositories

import (
	"log/slog"
	"testing"
	"time"

	"wallet-api/internal/database"
	"wallet-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo LedgerRepositoryInterface
}

func TestLedgerRepositorySuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryTestSuite))
}

func (s *LedgerRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewLedgerRepository(s.db.DB, slog.Default())
}

func (s *LedgerRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *LedgerRepositoryTestSuite) TestLoadLedger_EmptyStore() {
	ledger := s.repo.LoadLedger()

	s.NotNil(ledger)
	s.Empty(ledger.Transactions)
	s.Empty(ledger.Goals)
	s.Empty(ledger.FixedCharges)
}

func (s *LedgerRepositoryTestSuite) TestSaveAndLoadLedger_RoundTrip() {
	ledger := models.NewLedger()
	ledger.Transactions = append(ledger.Transactions, models.Transaction{
		ID:          uuid.New(),
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(50),
		Category:    "Food",
		Description: "Groceries",
		Date:        time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
	})
	ledger.FixedCharges = append(ledger.FixedCharges, models.FixedCharge{
		ID:     uuid.New(),
		Name:   "Rent",
		Amount: decimal.NewFromInt(600),
	})

	s.repo.SaveLedger(ledger)
	loaded := s.repo.LoadLedger()

	s.Len(loaded.Transactions, 1)
	s.Equal(ledger.Transactions[0].ID, loaded.Transactions[0].ID)
	s.True(loaded.Transactions[0].Amount.Equal(decimal.NewFromInt(50)))
	s.Len(loaded.FixedCharges, 1)
	s.Equal("Rent", loaded.FixedCharges[0].Name)
}

func (s *LedgerRepositoryTestSuite) TestSaveLedger_LastWriteWins() {
	first := models.NewLedger()
	first.Transactions = append(first.Transactions, models.Transaction{
		ID:       uuid.New(),
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(100),
		Category: "Salary",
		Date:     time.Now(),
	})
	s.repo.SaveLedger(first)

	second := models.NewLedger()
	s.repo.SaveLedger(second)

	loaded := s.repo.LoadLedger()
	s.Empty(loaded.Transactions)
}

func (s *LedgerRepositoryTestSuite) TestLoadLedger_CorruptDocument() {
	s.Require().NoError(s.repo.SaveValue(models.DocumentKeyLedger, "{not json"))

	ledger := s.repo.LoadLedger()

	s.NotNil(ledger)
	s.Empty(ledger.Transactions)
}

func (s *LedgerRepositoryTestSuite) TestCurrency_RoundTrip() {
	s.Equal("", s.repo.LoadCurrency())

	s.repo.SaveCurrency("EUR")
	s.Equal("EUR", s.repo.LoadCurrency())

	s.repo.SaveCurrency("USD")
	s.Equal("USD", s.repo.LoadCurrency())
}

func (s *LedgerRepositoryTestSuite) TestLoadValue_AbsentKey() {
	_, err := s.repo.LoadValue("wallet_missing")

	s.ErrorIs(err, ErrDocumentNotFound)
}

func (s *LedgerRepositoryTestSuite) TestSaveValue_Upsert() {
	s.Require().NoError(s.repo.SaveValue("wallet_pin_hash", "hash-one"))
	s.Require().NoError(s.repo.SaveValue("wallet_pin_hash", "hash-two"))

	value, err := s.repo.LoadValue("wallet_pin_hash")
	s.NoError(err)
	s.Equal("hash-two", value)
}
