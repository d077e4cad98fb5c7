package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wallet-api/internal/models"
	"wallet-api/internal/repositories"
)

var (
	ErrBackupInvalidJSON  = errors.New("backup data is not valid JSON")
	ErrBackupInvalidShape = errors.New("backup data does not match the ledger document shape")
)

const backupEmailBody = `<h1>Your wallet backup</h1>
<p>Hello,</p>
<p>Attached is the backup of your financial data.</p>
<p><strong>How to restore your data:</strong></p>
<ol>
  <li>Open the wallet application</li>
  <li>Go to Profile</li>
  <li>Tap "Restore from file"</li>
  <li>Select the file attached to this email</li>
</ol>
<p>Keep this file safe, it contains all your financial information.</p>`

// backupService implements BackupServiceInterface
type backupService struct {
	repo    repositories.LedgerRepositoryInterface
	relay   EmailRelayInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	from    string
	subject string
	now     func() time.Time
}

// NewBackupService creates a backup service over the document store and the
// outbound email relay
func NewBackupService(
	repo repositories.LedgerRepositoryInterface,
	relay EmailRelayInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	from, subject string,
) BackupServiceInterface {
	return &backupService{
		repo:    repo,
		relay:   relay,
		metrics: metrics,
		logger:  logger,
		from:    from,
		subject: subject,
		now:     time.Now,
	}
}

// Export serializes the current ledger document, pretty-printed, with a
// date-stamped filename.
func (s *backupService) Export() (string, []byte, error) {
	ledger := s.repo.LoadLedger()

	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize ledger for export: %w", err)
	}

	filename := fmt.Sprintf("wallet-backup-%s.json", s.now().Format("2006-01-02"))
	s.metrics.IncrementCounter("backup.event", map[string]string{"operation": "export", "status": "success"})

	return filename, data, nil
}

// Import validates a backup file and replaces the whole ledger document
// with its contents. The document is left unchanged when the file is not
// valid JSON or does not match the ledger shape.
func (s *backupService) Import(data []byte) error {
	if !json.Valid(data) {
		s.metrics.IncrementCounter("backup.event", map[string]string{"operation": "import", "status": "invalid_json"})
		return ErrBackupInvalidJSON
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var ledger models.Ledger
	if err := decoder.Decode(&ledger); err != nil {
		s.metrics.IncrementCounter("backup.event", map[string]string{"operation": "import", "status": "invalid_shape"})
		return fmt.Errorf("%w: %v", ErrBackupInvalidShape, err)
	}

	ledger.Normalize()
	s.repo.SaveLedger(&ledger)

	s.metrics.IncrementCounter("backup.event", map[string]string{"operation": "import", "status": "success"})
	s.logger.Info("ledger restored from backup",
		"transactions", len(ledger.Transactions),
		"goals", len(ledger.Goals),
		"fixed_charges", len(ledger.FixedCharges),
	)

	return nil
}

// EmailBackup exports the ledger and sends it as a base64 attachment
// through the relay. The ledger itself is never modified here.
func (s *backupService) EmailBackup(to string) error {
	filename, data, err := s.Export()
	if err != nil {
		return err
	}

	message := &EmailMessage{
		From:    s.from,
		To:      []string{to},
		Subject: s.subject,
		HTML:    backupEmailBody,
		Attachments: []Attachment{
			{
				Filename: filename,
				Content:  base64.StdEncoding.EncodeToString(data),
			},
		},
	}

	if err := s.relay.Send(message); err != nil {
		s.metrics.IncrementCounter("backup.event", map[string]string{"operation": "email", "status": "relay_failed"})
		return fmt.Errorf("failed to send backup email: %w", err)
	}

	s.metrics.IncrementCounter("backup.event", map[string]string{"operation": "email", "status": "success"})
	s.logger.Info("backup email sent", "to", to, "filename", filename)

	return nil
}
