package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Dan9191/bizplan/internal/export"
	"github.com/Dan9191/bizplan/internal/finance"
	"github.com/Dan9191/bizplan/internal/models"
)

// Export renders the user's forecast, projection and loan schedule as a workbook
func (s *Service) Export(ctx context.Context, userID int64) (*bytes.Buffer, error) {
	params, err := s.store.GetFinancialParams(ctx, userID)
	if err != nil {
		return nil, err
	}
	products, err := s.store.ListProducts(ctx, userID)
	if err != nil {
		return nil, err
	}

	opex := params.AnnualOperatingExpenses
	if !params.HasForecast() {
		expenses, err := s.store.ListExpenses(ctx, userID)
		if err != nil {
			return nil, err
		}
		opex = finance.AnnualOperatingExpenses(expenses)
	}

	in := export.Input{
		CompanyName:             params.CompanyName,
		Products:                products,
		Seasonality:             finance.ParseSeasonality(params.Seasonality),
		COGSPercentage:          params.COGSPercentage,
		AnnualOperatingExpenses: opex,
		Depreciation:            params.Depreciation,
		InterestExpense:         params.InterestExpense,
		Loan:                    params.Loan(),
	}
	if len(params.LoanSchedule) > 0 {
		var payment float64
		if params.LoanMonthlyPayment != nil {
			payment = *params.LoanMonthlyPayment
		}
		in.LoanSchedule = &models.LoanSchedule{MonthlyPayment: payment, Schedule: params.LoanSchedule}
	}

	buf, err := s.exporter.Build(in)
	if err != nil {
		return nil, fmt.Errorf("failed to export forecast: %w", err)
	}
	s.log.Infof("Forecast exported for user %d", userID)
	return buf, nil
}

// EmailExport mails the exported workbook to the user
func (s *Service) EmailExport(ctx context.Context, userID int64) error {
	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Email == "" {
		return ErrNoEmail
	}

	buf, err := s.Export(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.mailer.SendExport(user.Email, user.Username, buf.Bytes()); err != nil {
		s.log.Errorf("Failed to email export to user %d: %v", userID, err)
		return err
	}
	return nil
}
