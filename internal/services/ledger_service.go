package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wallet-api/internal/models"
	"wallet-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGoalNotFound        = errors.New("goal not found")
	ErrFixedChargeNotFound = errors.New("fixed charge not found")
)

// GoalUpdate carries the editable goal fields. Nil fields are left
// untouched. CurrentAmount is deliberately absent: advancing a goal goes
// through ApplyGoalContribution so the matching savings expense is recorded
// in the same document write.
type GoalUpdate struct {
	Name         *string
	TargetAmount *decimal.Decimal
	Deadline     *time.Time
}

// FixedChargeUpdate carries the editable fixed charge fields. Nil fields
// are left untouched.
type FixedChargeUpdate struct {
	Name       *string
	Amount     *decimal.Decimal
	PaymentDay *int
}

// ledgerService implements LedgerServiceInterface
type ledgerService struct {
	repo    repositories.LedgerRepositoryInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	now     func() time.Time
}

// NewLedgerService creates a ledger service over the document store
func NewLedgerService(
	repo repositories.LedgerRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Ledger returns the current ledger document
func (s *ledgerService) Ledger() *models.Ledger {
	return s.repo.LoadLedger()
}

// AddTransaction appends a new transaction to the ledger
func (s *ledgerService) AddTransaction(transaction models.Transaction) (*models.Transaction, error) {
	transaction.ID = uuid.New()
	if transaction.Date.IsZero() {
		transaction.Date = s.now()
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	ledger := s.repo.LoadLedger()
	ledger.Transactions = append(ledger.Transactions, transaction)
	s.repo.SaveLedger(ledger)

	s.recordMutation("transaction.added")
	return &transaction, nil
}

// DeleteTransaction removes a transaction by id. Deleting an unknown id is
// a no-op.
func (s *ledgerService) DeleteTransaction(id uuid.UUID) {
	ledger := s.repo.LoadLedger()

	kept := ledger.Transactions[:0]
	for _, transaction := range ledger.Transactions {
		if transaction.ID != id {
			kept = append(kept, transaction)
		}
	}
	ledger.Transactions = kept

	s.repo.SaveLedger(ledger)
	s.recordMutation("transaction.deleted")
}

// AddGoal appends a new savings goal to the ledger
func (s *ledgerService) AddGoal(goal models.Goal) (*models.Goal, error) {
	goal.ID = uuid.New()
	goal.CreatedAt = s.now()
	if goal.CurrentAmount.IsZero() {
		goal.CurrentAmount = decimal.Zero
	}

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	ledger := s.repo.LoadLedger()
	ledger.Goals = append(ledger.Goals, goal)
	s.repo.SaveLedger(ledger)

	s.recordMutation("goal.added")
	return &goal, nil
}

// UpdateGoal edits the name, target or deadline of an existing goal
func (s *ledgerService) UpdateGoal(id uuid.UUID, update GoalUpdate) (*models.Goal, error) {
	ledger := s.repo.LoadLedger()

	goal := ledger.FindGoal(id)
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	if update.Name != nil {
		goal.Name = *update.Name
	}
	if update.TargetAmount != nil {
		goal.TargetAmount = *update.TargetAmount
	}
	if update.Deadline != nil {
		goal.Deadline = *update.Deadline
	}

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	s.repo.SaveLedger(ledger)
	s.recordMutation("goal.updated")

	updated := *goal
	return &updated, nil
}

// ApplyGoalContribution advances a goal's current amount and records the
// matching savings expense. Both changes land in the same document save, so
// the goal progress and the expense total move together or not at all.
func (s *ledgerService) ApplyGoalContribution(id uuid.UUID, amount decimal.Decimal) (*models.Goal, *models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, nil, models.ErrInvalidContribution
	}

	ledger := s.repo.LoadLedger()

	goal := ledger.FindGoal(id)
	if goal == nil {
		return nil, nil, ErrGoalNotFound
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(amount)

	transaction := models.Transaction{
		ID:          uuid.New(),
		Type:        models.TransactionTypeExpense,
		Amount:      amount,
		Category:    models.CategorySavings,
		Description: fmt.Sprintf("Goal contribution: %s", goal.Name),
		Date:        s.now(),
	}
	ledger.Transactions = append(ledger.Transactions, transaction)

	s.repo.SaveLedger(ledger)

	s.recordMutation("goal.contribution")
	s.logger.Info("goal contribution applied",
		"goal_id", goal.ID,
		"amount", amount.String(),
		"current_amount", goal.CurrentAmount.String(),
	)

	updated := *goal
	return &updated, &transaction, nil
}

// DeleteGoal removes a goal by id. Deleting an unknown id is a no-op.
// Previously recorded contribution expenses stay in the ledger.
func (s *ledgerService) DeleteGoal(id uuid.UUID) {
	ledger := s.repo.LoadLedger()

	kept := ledger.Goals[:0]
	for _, goal := range ledger.Goals {
		if goal.ID != id {
			kept = append(kept, goal)
		}
	}
	ledger.Goals = kept

	s.repo.SaveLedger(ledger)
	s.recordMutation("goal.deleted")
}

// AddFixedCharge appends a new recurring monthly charge to the ledger
func (s *ledgerService) AddFixedCharge(charge models.FixedCharge) (*models.FixedCharge, error) {
	charge.ID = uuid.New()

	if err := charge.Validate(); err != nil {
		return nil, err
	}

	ledger := s.repo.LoadLedger()
	ledger.FixedCharges = append(ledger.FixedCharges, charge)
	s.repo.SaveLedger(ledger)

	s.recordMutation("charge.added")
	return &charge, nil
}

// UpdateFixedCharge edits an existing fixed charge
func (s *ledgerService) UpdateFixedCharge(id uuid.UUID, update FixedChargeUpdate) (*models.FixedCharge, error) {
	ledger := s.repo.LoadLedger()

	charge := ledger.FindFixedCharge(id)
	if charge == nil {
		return nil, ErrFixedChargeNotFound
	}

	if update.Name != nil {
		charge.Name = *update.Name
	}
	if update.Amount != nil {
		charge.Amount = *update.Amount
	}
	if update.PaymentDay != nil {
		charge.PaymentDay = *update.PaymentDay
	}

	if err := charge.Validate(); err != nil {
		return nil, err
	}

	s.repo.SaveLedger(ledger)
	s.recordMutation("charge.updated")

	updated := *charge
	return &updated, nil
}

// DeleteFixedCharge removes a fixed charge by id. Deleting an unknown id is
// a no-op.
func (s *ledgerService) DeleteFixedCharge(id uuid.UUID) {
	ledger := s.repo.LoadLedger()

	kept := ledger.FixedCharges[:0]
	for _, charge := range ledger.FixedCharges {
		if charge.ID != id {
			kept = append(kept, charge)
		}
	}
	ledger.FixedCharges = kept

	s.repo.SaveLedger(ledger)
	s.recordMutation("charge.deleted")
}

func (s *ledgerService) recordMutation(operation string) {
	s.metrics.IncrementCounter("ledger.mutation", map[string]string{"operation": operation})
}
