package models

import "time"

// Well-known document keys. The entire ledger lives under DocumentKeyLedger;
// the currency selection and the PIN hash are small auxiliary values stored
// beside it.
const (
	DocumentKeyLedger   = "wallet_data"
	DocumentKeyCurrency = "wallet_currency"
	DocumentKeyPinHash  = "wallet_pin_hash"
)

// Document is a persisted key/value row. The store keeps whole serialized
// documents; there is no per-entity persistence.
type Document struct {
	Key       string    `gorm:"type:varchar(64);primary_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for Document
func (d *Document) TableName() string {
	return "documents"
}
