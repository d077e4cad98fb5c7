package services

import (
	"testing"
	"time"

	"wallet-api/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AdviceServiceTestSuite struct {
	suite.Suite
	service *adviceService
	today   time.Time
}

func TestAdviceServiceSuite(t *testing.T) {
	suite.Run(t, new(AdviceServiceTestSuite))
}

func (s *AdviceServiceTestSuite) SetupTest() {
	s.today = time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	s.service = &adviceService{now: func() time.Time { return s.today }}
}

func (s *AdviceServiceTestSuite) TestGoalAlreadyMet_ReturnsNil() {
	advice := s.service.CalculateSavingsAdvice(
		decimal.NewFromInt(1000), decimal.NewFromInt(1000), s.today.AddDate(0, 1, 0))
	s.Nil(advice)

	advice = s.service.CalculateSavingsAdvice(
		decimal.NewFromInt(1000), decimal.NewFromInt(1200), s.today.AddDate(0, 1, 0))
	s.Nil(advice)
}

func (s *AdviceServiceTestSuite) TestTenDaysLeft() {
	deadline := s.today.AddDate(0, 0, 10)

	advice := s.service.CalculateSavingsAdvice(
		decimal.NewFromInt(1000), decimal.Zero, deadline)

	s.Require().NotNil(advice)
	s.Equal(10, advice.DaysLeft)
	s.True(advice.PerDay.Equal(decimal.NewFromInt(100)))
	s.True(advice.PerWeek.Equal(decimal.NewFromInt(1000))) // one partial week floors to 1
	s.True(advice.PerMonth.Equal(decimal.NewFromInt(1000)))
	s.True(advice.IsUrgent)
}

func (s *AdviceServiceTestSuite) TestDeadlinePassed() {
	deadline := s.today.AddDate(0, 0, -5)

	advice := s.service.CalculateSavingsAdvice(
		decimal.NewFromInt(500), decimal.NewFromInt(100), deadline)

	s.Require().NotNil(advice)
	s.Equal(0, advice.DaysLeft)
	s.True(advice.PerDay.IsZero())
	s.True(advice.PerWeek.IsZero())
	s.True(advice.PerMonth.IsZero())
	s.True(advice.IsUrgent)
	s.Equal("Deadline has passed", advice.Message)
	s.True(advice.RemainingAmount.Equal(decimal.NewFromInt(400)))
}

func (s *AdviceServiceTestSuite) TestLastDay() {
	deadline := s.today.Add(12 * time.Hour)

	advice := s.service.CalculateSavingsAdvice(
		decimal.NewFromInt(200), decimal.Zero, deadline)

	s.Require().NotNil(advice)
	s.Equal(0, advice.DaysLeft)
	s.True(advice.PerDay.Equal(decimal.NewFromInt(200)))
	s.True(advice.IsUrgent)
	s.Equal("Last day!", advice.Message)
}

func (s *AdviceServiceTestSuite) TestDistantDeadline_NotUrgent() {
	deadline := s.today.AddDate(0, 6, 0)

	advice := s.service.CalculateSavingsAdvice(
		decimal.NewFromInt(600), decimal.Zero, deadline)

	s.Require().NotNil(advice)
	s.False(advice.IsUrgent)
	s.True(advice.PerMonth.Equal(decimal.NewFromInt(100)))
	s.Equal("6 months to reach your goal", advice.Message)
}

func (s *AdviceServiceTestSuite) TestOneMonthMessage() {
	deadline := s.today.AddDate(0, 1, 0)

	advice := s.service.CalculateSavingsAdvice(
		decimal.NewFromInt(310), decimal.Zero, deadline)

	s.Require().NotNil(advice)
	s.Equal("One month to get there", advice.Message)
}

func (s *AdviceServiceTestSuite) TestBestAdvice_Buckets() {
	perDay := decimal.NewFromInt(10)
	perWeek := decimal.NewFromInt(70)
	perMonth := decimal.NewFromInt(300)

	cases := []struct {
		daysLeft int
		period   string
		amount   decimal.Decimal
	}{
		{3, models.AdvicePeriodDay, perDay},
		{30, models.AdvicePeriodWeek, perWeek},
		{90, models.AdvicePeriodMonth, perMonth},
	}

	for _, tc := range cases {
		best := s.service.BestAdvice(&models.SavingsAdvice{
			DaysLeft: tc.daysLeft,
			PerDay:   perDay,
			PerWeek:  perWeek,
			PerMonth: perMonth,
		})
		s.Equal(tc.period, best.Period)
		s.True(best.Amount.Equal(tc.amount))
	}
}

func (s *AdviceServiceTestSuite) TestCalendarMonthsBetween() {
	s.Equal(1, calendarMonthsBetween(s.today, s.today.AddDate(0, 1, 0)))
	s.Equal(0, calendarMonthsBetween(s.today, s.today.AddDate(0, 1, -1)))
	s.Equal(12, calendarMonthsBetween(s.today, s.today.AddDate(1, 0, 0)))
}
