package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"wallet-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
)

// ledgerRepository implements LedgerRepositoryInterface over a gorm-backed
// documents table.
type ledgerRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB, logger *slog.Logger) LedgerRepositoryInterface {
	return &ledgerRepository{
		db:     db,
		logger: logger,
	}
}

// LoadLedger returns the persisted ledger document or the default empty one
func (r *ledgerRepository) LoadLedger() *models.Ledger {
	raw, err := r.LoadValue(models.DocumentKeyLedger)
	if err != nil {
		if !errors.Is(err, ErrDocumentNotFound) {
			r.logger.Error("failed to read ledger document, falling back to empty ledger", "error", err)
		}
		return models.NewLedger()
	}

	var ledger models.Ledger
	if err := json.Unmarshal([]byte(raw), &ledger); err != nil {
		r.logger.Error("failed to parse ledger document, falling back to empty ledger", "error", err)
		return models.NewLedger()
	}

	ledger.Normalize()
	return &ledger
}

// SaveLedger persists the entire ledger document, replacing any prior value
func (r *ledgerRepository) SaveLedger(ledger *models.Ledger) {
	raw, err := json.Marshal(ledger)
	if err != nil {
		r.logger.Error("failed to serialize ledger document", "error", err)
		return
	}

	if err := r.SaveValue(models.DocumentKeyLedger, string(raw)); err != nil {
		r.logger.Error("failed to save ledger document", "error", err)
	}
}

// LoadCurrency returns the selected currency code, or empty string
func (r *ledgerRepository) LoadCurrency() string {
	code, err := r.LoadValue(models.DocumentKeyCurrency)
	if err != nil {
		if !errors.Is(err, ErrDocumentNotFound) {
			r.logger.Error("failed to read currency selection", "error", err)
		}
		return ""
	}
	return code
}

// SaveCurrency stores the selected currency code
func (r *ledgerRepository) SaveCurrency(code string) {
	if err := r.SaveValue(models.DocumentKeyCurrency, code); err != nil {
		r.logger.Error("failed to save currency selection", "error", err)
	}
}

// LoadValue reads a raw document value by key
func (r *ledgerRepository) LoadValue(key string) (string, error) {
	var document models.Document
	if err := r.db.Where("key = ?", key).First(&document).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrDocumentNotFound
		}
		return "", fmt.Errorf("failed to load document %q: %w", key, err)
	}
	return document.Value, nil
}

// SaveValue writes a raw document value, overwriting any prior one
func (r *ledgerRepository) SaveValue(key, value string) error {
	document := models.Document{
		Key:   key,
		Value: value,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&document).Error
	if err != nil {
		return fmt.Errorf("failed to save document %q: %w", key, err)
	}
	return nil
}
