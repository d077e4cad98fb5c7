package services

import (
	"time"

	"wallet-api/internal/models"
	"wallet-api/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	sampleHistoryDays = 90
	sampleIncomeShare = 4 // roughly one income entry per four transactions
	sampleGoalCount   = 2
	sampleChargeCount = 3
	maxExpenseAmount  = 250
	maxIncomeAmount   = 3000
)

var sampleChargeNames = []string{"Rent", "Internet", "Phone plan", "Gym", "Streaming"}

// sampleDataService implements SampleDataServiceInterface. Development
// helper that replaces the ledger with a randomized but plausible document.
type sampleDataService struct {
	repo repositories.LedgerRepositoryInterface
	now  func() time.Time
}

// NewSampleDataService creates a sample data generator over the document store
func NewSampleDataService(repo repositories.LedgerRepositoryInterface) SampleDataServiceInterface {
	return &sampleDataService{
		repo: repo,
		now:  time.Now,
	}
}

// Seed replaces the ledger with a generated demo document
func (s *sampleDataService) Seed(transactionCount int) *models.Ledger {
	if transactionCount <= 0 {
		transactionCount = 40
	}

	now := s.now()
	ledger := models.NewLedger()

	for i := 0; i < transactionCount; i++ {
		date := now.AddDate(0, 0, -gofakeit.Number(0, sampleHistoryDays))

		if i%sampleIncomeShare == 0 {
			ledger.Transactions = append(ledger.Transactions, models.Transaction{
				ID:          uuid.New(),
				Type:        models.TransactionTypeIncome,
				Amount:      decimal.NewFromFloat(gofakeit.Price(200, maxIncomeAmount)),
				Category:    gofakeit.RandomString(models.IncomeCategories),
				Description: gofakeit.Company(),
				Date:        date,
			})
			continue
		}

		ledger.Transactions = append(ledger.Transactions, models.Transaction{
			ID:          uuid.New(),
			Type:        models.TransactionTypeExpense,
			Amount:      decimal.NewFromFloat(gofakeit.Price(1, maxExpenseAmount)),
			Category:    gofakeit.RandomString(models.ExpenseCategories),
			Description: gofakeit.ProductName(),
			Date:        date,
		})
	}

	for i := 0; i < sampleGoalCount; i++ {
		target := decimal.NewFromFloat(gofakeit.Price(500, 5000))
		ledger.Goals = append(ledger.Goals, models.Goal{
			ID:            uuid.New(),
			Name:          gofakeit.BuzzWord() + " fund",
			TargetAmount:  target,
			CurrentAmount: target.Div(decimal.NewFromInt(int64(gofakeit.Number(2, 10)))),
			Deadline:      now.AddDate(0, gofakeit.Number(1, 12), 0),
			CreatedAt:     now,
		})
	}

	for i := 0; i < sampleChargeCount; i++ {
		ledger.FixedCharges = append(ledger.FixedCharges, models.FixedCharge{
			ID:         uuid.New(),
			Name:       sampleChargeNames[i%len(sampleChargeNames)],
			Amount:     decimal.NewFromFloat(gofakeit.Price(10, 800)),
			PaymentDay: gofakeit.Number(1, 28),
		})
	}

	s.repo.SaveLedger(ledger)
	return ledger
}
