package repositories

import "wallet-api/internal/models"

// LedgerRepositoryInterface persists whole serialized documents under fixed
// keys. There is no per-entity persistence and no concurrency check: a save
// overwrites whatever was stored before it, and the last writer wins. That
// behavior is the documented contract of the store, not an accident.
type LedgerRepositoryInterface interface {
	// LoadLedger returns the persisted ledger document. It never fails from
	// the caller's perspective: an absent or unparseable document yields the
	// default empty ledger, so callers cannot distinguish "no data yet" from
	// "corrupt data".
	LoadLedger() *models.Ledger

	// SaveLedger serializes and persists the entire document, replacing any
	// prior value. Failures are logged and swallowed; the operation appears
	// to have succeeded.
	SaveLedger(ledger *models.Ledger)

	// LoadCurrency returns the selected currency code, or empty string when
	// none has been chosen yet.
	LoadCurrency() string

	// SaveCurrency stores the selected currency code.
	SaveCurrency(code string)

	// LoadValue and SaveValue give raw access to auxiliary keys (the PIN
	// hash). Unlike the ledger operations they surface storage errors, so
	// callers that need to distinguish "absent" from "broken" can.
	LoadValue(key string) (string, error)
	SaveValue(key, value string) error
}
