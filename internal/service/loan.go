package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dan9191/bizplan/internal/finance"
	"github.com/Dan9191/bizplan/internal/models"
	"github.com/Dan9191/bizplan/internal/repository"
)

// LoanCalculator returns the stored loan and its coverage against the last forecast
func (s *Service) LoanCalculator(ctx context.Context, userID int64) (*models.LoanView, error) {
	params, err := s.store.GetFinancialParams(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !params.HasForecast() {
		return nil, ErrNoForecast
	}
	return s.loanView(ctx, params), nil
}

// SubmitLoan computes an amortization schedule for the given terms and stores it
func (s *Service) SubmitLoan(ctx context.Context, userID int64, terms models.LoanTerms) (*models.LoanView, error) {
	schedule, err := finance.ComputeLoanSchedule(terms.Amount, terms.InterestRate, terms.TermYears)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidLoanTerms) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, err
	}

	var params *models.FinancialParameters
	err = s.store.WithTx(ctx, func(tx repository.Store) error {
		p, err := tx.GetFinancialParams(ctx, userID)
		if err != nil {
			return err
		}
		if !p.HasForecast() {
			return ErrNoForecast
		}

		amount, rate, term, payment := terms.Amount, terms.InterestRate, terms.TermYears, schedule.MonthlyPayment
		p.LoanAmount = &amount
		p.LoanInterestRate = &rate
		p.LoanTerm = &term
		p.LoanMonthlyPayment = &payment
		p.LoanSchedule = schedule.Schedule
		if err := tx.UpdateFinancialParams(ctx, p); err != nil {
			return err
		}
		params = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit loan: %w", err)
	}

	s.log.Infof("Loan submitted for user %d: %.2f over %d years", userID, terms.Amount, terms.TermYears)
	return s.loanView(ctx, params), nil
}

func (s *Service) loanView(ctx context.Context, params *models.FinancialParameters) *models.LoanView {
	view := &models.LoanView{
		Terms:              params.Loan(),
		QuarterlyNetProfit: params.QuarterlyNetProfit,
		MonthlyNetProfit:   params.QuarterlyNetProfit / finance.MonthsPerQuarter,
		Schedule:           params.LoanSchedule,
	}
	if params.LoanMonthlyPayment == nil || *params.LoanMonthlyPayment <= 0 {
		return view
	}

	view.MonthlyPayment = *params.LoanMonthlyPayment
	view.DSCR = finance.ComputeDSCR(params.NetOperatingIncome, view.MonthlyPayment*finance.MonthsPerYear)
	view.RiskLevel = finance.AssessRisk(view.DSCR)

	msg, err := s.cache.Get(ctx, view.RiskLevel)
	if err != nil {
		s.log.Warnf("Failed to load assessment message for %s: %v", view.RiskLevel, err)
		return view
	}
	view.Assessment = msg
	return view
}
