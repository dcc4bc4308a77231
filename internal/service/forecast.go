package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dan9191/bizplan/internal/finance"
	"github.com/Dan9191/bizplan/internal/models"
	"github.com/Dan9191/bizplan/internal/repository"
)

// ForecastInput carries the parameters a user can change before recalculating.
// Nil balance sheet slices keep the stored lines.
type ForecastInput struct {
	COGSPercentage          float64            `json:"cogs_percentage"`
	TaxRate                 float64            `json:"tax_rate"`
	Seasonality             []float64          `json:"seasonality"`
	CurrentAssets           float64            `json:"current_assets"`
	CurrentLiabilities      float64            `json:"current_liabilities"`
	InterestExpense         float64            `json:"interest_expense"`
	Depreciation            float64            `json:"depreciation"`
	AnnualOperatingExpenses *float64           `json:"annual_operating_expenses,omitempty"`
	Assets                  []models.Asset     `json:"assets,omitempty"`
	Liabilities             []models.Liability `json:"liabilities,omitempty"`
}

// Validate checks the ranges the engines rely on
func (in ForecastInput) Validate() error {
	if !isFinite(in.COGSPercentage, in.TaxRate, in.CurrentAssets, in.CurrentLiabilities, in.InterestExpense, in.Depreciation) {
		return invalidInput("parameters must be numbers")
	}
	if in.COGSPercentage < 0 || in.COGSPercentage > 100 {
		return invalidInput("cogs_percentage must be between 0 and 100")
	}
	if in.TaxRate < 0 || in.TaxRate > 100 {
		return invalidInput("tax_rate must be between 0 and 100")
	}
	if in.CurrentAssets < 0 || in.CurrentLiabilities < 0 || in.InterestExpense < 0 || in.Depreciation < 0 {
		return invalidInput("balance sheet amounts must not be negative")
	}
	if opex := in.AnnualOperatingExpenses; opex != nil && (!isFinite(*opex) || *opex < 0) {
		return invalidInput("annual_operating_expenses must be a non-negative number")
	}
	for i, a := range in.Assets {
		if !isFinite(a.Amount) || a.Amount < 0 {
			return invalidInput("asset %d: amount must be a non-negative number", i+1)
		}
	}
	for i, l := range in.Liabilities {
		if !isFinite(l.Amount) || l.Amount < 0 {
			return invalidInput("liability %d: amount must be a non-negative number", i+1)
		}
	}
	return nil
}

// Forecast computes the forecast from the stored parameters and persists its outputs
func (s *Service) Forecast(ctx context.Context, userID int64) (*models.ForecastView, error) {
	var view *models.ForecastView
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		params, err := tx.GetFinancialParams(ctx, userID)
		if err != nil {
			return err
		}
		products, err := tx.ListProducts(ctx, userID)
		if err != nil {
			return err
		}
		expenses, err := tx.ListExpenses(ctx, userID)
		if err != nil {
			return err
		}
		view, err = s.forecast(ctx, tx, params, products, finance.AnnualOperatingExpenses(expenses))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute forecast: %w", err)
	}
	return view, nil
}

// RecalculateForecast applies new parameters and balance sheet lines and
// recomputes the forecast. Nothing is persisted unless every step succeeds.
func (s *Service) RecalculateForecast(ctx context.Context, userID int64, in ForecastInput) (*models.ForecastView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var view *models.ForecastView
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		params, err := tx.GetFinancialParams(ctx, userID)
		if err != nil {
			return err
		}
		products, err := tx.ListProducts(ctx, userID)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			return ErrNoProducts
		}

		var opex float64
		if in.AnnualOperatingExpenses != nil {
			opex = *in.AnnualOperatingExpenses
		} else {
			expenses, err := tx.ListExpenses(ctx, userID)
			if err != nil {
				return err
			}
			opex = finance.AnnualOperatingExpenses(expenses)
		}

		params.COGSPercentage = in.COGSPercentage
		params.TaxRate = in.TaxRate
		params.Seasonality = finance.ParseSeasonality(in.Seasonality).Slice()
		params.CurrentAssets = in.CurrentAssets
		params.CurrentLiabilities = in.CurrentLiabilities
		params.InterestExpense = in.InterestExpense
		params.Depreciation = in.Depreciation

		if in.Assets != nil {
			if err := tx.ReplaceAssets(ctx, userID, describedAssets(in.Assets)); err != nil {
				return err
			}
		}
		if in.Liabilities != nil {
			if err := tx.ReplaceLiabilities(ctx, userID, describedLiabilities(in.Liabilities)); err != nil {
				return err
			}
		}

		view, err = s.forecast(ctx, tx, params, products, opex)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to recalculate forecast: %w", err)
	}

	s.log.Infof("Forecast recalculated for user %d", userID)
	return view, nil
}

// forecast runs the profitability and ratio engines and writes the outputs
// back to params within tx.
func (s *Service) forecast(
	ctx context.Context,
	tx repository.Store,
	params *models.FinancialParameters,
	products []models.Product,
	annualOpEx float64,
) (*models.ForecastView, error) {
	assets, err := tx.ListAssets(ctx, params.UserID)
	if err != nil {
		return nil, err
	}
	liabilities, err := tx.ListLiabilities(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	forecast := finance.ComputeForecast(
		products,
		params.COGSPercentage,
		annualOpEx,
		params.TaxRate,
		finance.ParseSeasonality(params.Seasonality),
	)

	var totalAssets, totalDebt float64
	for _, a := range assets {
		totalAssets += a.Amount
	}
	for _, l := range liabilities {
		totalDebt += l.Amount
	}

	base := finance.RatioInput{
		TotalAssets:        totalAssets,
		CurrentAssets:      params.CurrentAssets,
		CurrentLiabilities: params.CurrentLiabilities,
		TotalDebt:          totalDebt,
	}
	forecast.Annual.Ratios = statementRatios(base, forecast.Annual, params.InterestExpense, params.Depreciation)
	// Interest and depreciation are annual figures, spread evenly over the quarters.
	for q := range forecast.Quarterly {
		forecast.Quarterly[q].Ratios = statementRatios(base, forecast.Quarterly[q],
			params.InterestExpense/finance.QuartersPerYear, params.Depreciation/finance.QuartersPerYear)
	}

	now := s.now().UTC()
	params.AnnualOperatingExpenses = annualOpEx
	params.TotalAnnualRevenue = forecast.Annual.Revenue
	params.AnnualNetProfit = forecast.Annual.NetProfit
	params.QuarterlyNetProfit = forecast.Quarterly[0].NetProfit
	params.NetOperatingIncome = forecast.Annual.OperatingProfit
	params.ForecastedAt = &now
	if err := tx.UpdateFinancialParams(ctx, params); err != nil {
		return nil, err
	}

	return &models.ForecastView{
		Forecast:    forecast,
		Assets:      assets,
		Liabilities: liabilities,
		Params:      params,
	}, nil
}

func statementRatios(base finance.RatioInput, st models.Statement, interest, depreciation float64) models.Ratios {
	base.NetProfit = st.NetProfit
	base.TotalRevenue = st.Revenue
	base.NetOperatingIncome = st.OperatingProfit
	base.InterestExpense = interest
	base.Depreciation = depreciation
	return finance.ComputeKeyRatios(base)
}

func describedAssets(in []models.Asset) []models.Asset {
	out := make([]models.Asset, 0, len(in))
	for _, a := range in {
		a.Description = strings.TrimSpace(a.Description)
		if a.Description == "" {
			continue
		}
		out = append(out, a)
	}
	return out
}

func describedLiabilities(in []models.Liability) []models.Liability {
	out := make([]models.Liability, 0, len(in))
	for _, l := range in {
		l.Description = strings.TrimSpace(l.Description)
		if l.Description == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
