package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the aggregate financial document: every transaction, goal and
// fixed charge lives in this single structure, and it is persisted whole.
// Mutations follow a read-modify-write cycle over the entire document; the
// last writer wins.
type Ledger struct {
	Transactions []Transaction `json:"transactions"`
	Goals        []Goal        `json:"goals"`
	FixedCharges []FixedCharge `json:"fixedCharges"`

	// MonthlyBudget is a legacy field kept for document compatibility. It is
	// persisted but not consumed anywhere.
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
}

// NewLedger returns an empty ledger document, the documented default when no
// document has been persisted yet or the stored one cannot be parsed.
func NewLedger() *Ledger {
	return &Ledger{
		Transactions:  []Transaction{},
		Goals:         []Goal{},
		FixedCharges:  []FixedCharge{},
		MonthlyBudget: decimal.Zero,
	}
}

// Normalize replaces nil slices with empty ones so a decoded document always
// round-trips to the same JSON shape.
func (l *Ledger) Normalize() {
	if l.Transactions == nil {
		l.Transactions = []Transaction{}
	}
	if l.Goals == nil {
		l.Goals = []Goal{}
	}
	if l.FixedCharges == nil {
		l.FixedCharges = []FixedCharge{}
	}
}

// FindGoal returns the goal with the given id, or nil if absent.
func (l *Ledger) FindGoal(id uuid.UUID) *Goal {
	for i := range l.Goals {
		if l.Goals[i].ID == id {
			return &l.Goals[i]
		}
	}
	return nil
}

// FindFixedCharge returns the fixed charge with the given id, or nil if absent.
func (l *Ledger) FindFixedCharge(id uuid.UUID) *FixedCharge {
	for i := range l.FixedCharges {
		if l.FixedCharges[i].ID == id {
			return &l.FixedCharges[i]
		}
	}
	return nil
}

// TotalFixedCharges sums every recurring monthly charge.
func (l *Ledger) TotalFixedCharges() decimal.Decimal {
	total := decimal.Zero
	for _, charge := range l.FixedCharges {
		total = total.Add(charge.Amount)
	}
	return total
}
