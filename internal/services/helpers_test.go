package services

import (
	"wallet-api/internal/models"
	"wallet-api/internal/repositories"
)

// fakeLedgerRepo is an in-memory stand-in for the document store. It honors
// the same contract: loads never fail, saves replace the whole document.
type fakeLedgerRepo struct {
	ledger   *models.Ledger
	currency string
	values   map[string]string
	saves    int
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		ledger: models.NewLedger(),
		values: make(map[string]string),
	}
}

func (f *fakeLedgerRepo) LoadLedger() *models.Ledger {
	copied := *f.ledger
	copied.Transactions = append([]models.Transaction(nil), f.ledger.Transactions...)
	copied.Goals = append([]models.Goal(nil), f.ledger.Goals...)
	copied.FixedCharges = append([]models.FixedCharge(nil), f.ledger.FixedCharges...)
	copied.Normalize()
	return &copied
}

func (f *fakeLedgerRepo) SaveLedger(ledger *models.Ledger) {
	f.ledger = ledger
	f.saves++
}

func (f *fakeLedgerRepo) LoadCurrency() string {
	return f.currency
}

func (f *fakeLedgerRepo) SaveCurrency(code string) {
	f.currency = code
}

func (f *fakeLedgerRepo) LoadValue(key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", repositories.ErrDocumentNotFound
	}
	return value, nil
}

func (f *fakeLedgerRepo) SaveValue(key, value string) error {
	f.values[key] = value
	return nil
}
