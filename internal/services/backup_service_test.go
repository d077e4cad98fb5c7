package services

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"wallet-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type fakeRelay struct {
	sent []*EmailMessage
	err  error
}

func (f *fakeRelay) Send(message *EmailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, message)
	return nil
}

type BackupServiceTestSuite struct {
	suite.Suite
	repo    *fakeLedgerRepo
	relay   *fakeRelay
	service BackupServiceInterface
}

func TestBackupServiceSuite(t *testing.T) {
	suite.Run(t, new(BackupServiceTestSuite))
}

func (s *BackupServiceTestSuite) SetupTest() {
	s.repo = newFakeLedgerRepo()
	s.relay = &fakeRelay{}
	s.service = NewBackupService(
		s.repo, s.relay, NewNoopMetrics(), slog.Default(),
		"Wallet <backup@wallet.local>", "Wallet backup",
	)
}

func (s *BackupServiceTestSuite) seedLedger() {
	s.repo.ledger.Transactions = append(s.repo.ledger.Transactions, models.Transaction{
		ID:       uuid.New(),
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(42),
		Category: "Food",
		Date:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	s.repo.ledger.Goals = append(s.repo.ledger.Goals, models.Goal{
		ID:           uuid.New(),
		Name:         "Vacation",
		TargetAmount: decimal.NewFromInt(1000),
		Deadline:     time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
}

func (s *BackupServiceTestSuite) TestExport_FilenameAndShape() {
	s.seedLedger()

	filename, data, err := s.service.Export()

	s.NoError(err)
	s.Regexp(`^wallet-backup-\d{4}-\d{2}-\d{2}\.json$`, filename)

	var document map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(data, &document))
	s.Contains(document, "transactions")
	s.Contains(document, "goals")
	s.Contains(document, "fixedCharges")
	s.Contains(document, "monthlyBudget")
}

func (s *BackupServiceTestSuite) TestExportImport_RoundTrip() {
	s.seedLedger()

	_, data, err := s.service.Export()
	s.Require().NoError(err)

	// Wipe and restore.
	s.repo.ledger = models.NewLedger()
	s.Require().NoError(s.service.Import(data))

	restored := s.repo.LoadLedger()
	s.Len(restored.Transactions, 1)
	s.Len(restored.Goals, 1)
	s.Equal("Vacation", restored.Goals[0].Name)
}

func (s *BackupServiceTestSuite) TestImport_RejectsInvalidJSON() {
	s.seedLedger()
	before := s.repo.LoadLedger()

	err := s.service.Import([]byte("{not json"))

	s.ErrorIs(err, ErrBackupInvalidJSON)
	s.Equal(len(before.Transactions), len(s.repo.LoadLedger().Transactions))
}

func (s *BackupServiceTestSuite) TestImport_RejectsUnknownFields() {
	err := s.service.Import([]byte(`{"transactions": [], "accounts": []}`))

	s.ErrorIs(err, ErrBackupInvalidShape)
}

func (s *BackupServiceTestSuite) TestImport_NormalizesMissingLists() {
	s.Require().NoError(s.service.Import([]byte(`{"transactions": []}`)))

	restored := s.repo.LoadLedger()
	s.NotNil(restored.Goals)
	s.NotNil(restored.FixedCharges)
}

func (s *BackupServiceTestSuite) TestEmailBackup_AttachesDocument() {
	s.seedLedger()

	s.Require().NoError(s.service.EmailBackup("user@example.com"))

	s.Require().Len(s.relay.sent, 1)
	message := s.relay.sent[0]
	s.Equal([]string{"user@example.com"}, message.To)
	s.Equal("Wallet backup", message.Subject)
	s.Contains(message.HTML, "restore")

	s.Require().Len(message.Attachments, 1)
	decoded, err := base64.StdEncoding.DecodeString(message.Attachments[0].Content)
	s.NoError(err)
	s.True(json.Valid(decoded))
}

func (s *BackupServiceTestSuite) TestEmailBackup_RelayFailure() {
	s.relay.err = errors.New("relay down")

	err := s.service.EmailBackup("user@example.com")

	s.Error(err)
	s.Empty(s.relay.sent)
}
