package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dan9191/bizplan/internal/models"
)

const paramsColumns = `id, user_id, company_name, cogs_percentage, tax_rate, seasonality,
		current_assets, current_liabilities, interest_expense, depreciation,
		annual_operating_expenses, total_annual_revenue, annual_net_profit, quarterly_net_profit,
		net_operating_income, forecasted_at,
		loan_amount, loan_interest_rate, loan_term, loan_monthly_payment, loan_schedule`

// GetFinancialParams retrieves the parameters row of a user
func (r *Repository) GetFinancialParams(ctx context.Context, userID int64) (*models.FinancialParameters, error) {
	query := `SELECT ` + paramsColumns + ` FROM bizplan.financial_params WHERE user_id = $1`

	var (
		p            models.FinancialParameters
		seasonality  string
		forecastedAt sql.NullTime
		loanAmount   sql.NullFloat64
		loanRate     sql.NullFloat64
		loanTerm     sql.NullInt64
		loanPayment  sql.NullFloat64
		loanSchedule sql.NullString
	)
	err := r.q.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.COGSPercentage, &p.TaxRate, &seasonality,
		&p.CurrentAssets, &p.CurrentLiabilities, &p.InterestExpense, &p.Depreciation,
		&p.AnnualOperatingExpenses, &p.TotalAnnualRevenue, &p.AnnualNetProfit, &p.QuarterlyNetProfit,
		&p.NetOperatingIncome, &forecastedAt,
		&loanAmount, &loanRate, &loanTerm, &loanPayment, &loanSchedule,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("financial parameters: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get financial parameters: %w", err)
	}

	// Malformed seasonality is left empty; the forecast falls back to a flat profile.
	if err := json.Unmarshal([]byte(seasonality), &p.Seasonality); err != nil {
		p.Seasonality = nil
	}
	if forecastedAt.Valid {
		p.ForecastedAt = &forecastedAt.Time
	}
	if loanAmount.Valid {
		p.LoanAmount = &loanAmount.Float64
	}
	if loanRate.Valid {
		p.LoanInterestRate = &loanRate.Float64
	}
	if loanTerm.Valid {
		term := int(loanTerm.Int64)
		p.LoanTerm = &term
	}
	if loanPayment.Valid {
		p.LoanMonthlyPayment = &loanPayment.Float64
	}
	if loanSchedule.Valid && loanSchedule.String != "" {
		if err := json.Unmarshal([]byte(loanSchedule.String), &p.LoanSchedule); err != nil {
			return nil, fmt.Errorf("failed to decode loan schedule: %w", err)
		}
	}
	return &p, nil
}

// CreateFinancialParams inserts the parameters row unless the user already
// has one. It reports whether a row was created.
func (r *Repository) CreateFinancialParams(ctx context.Context, p *models.FinancialParameters) (bool, error) {
	seasonality, err := json.Marshal(p.Seasonality)
	if err != nil {
		return false, fmt.Errorf("failed to encode seasonality: %w", err)
	}

	query := `
		INSERT INTO bizplan.financial_params (user_id, company_name, cogs_percentage, tax_rate, seasonality,
			current_assets, current_liabilities, interest_expense, depreciation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING id`
	err = r.q.QueryRowContext(ctx, query, p.UserID, p.CompanyName, p.COGSPercentage, p.TaxRate, string(seasonality),
		p.CurrentAssets, p.CurrentLiabilities, p.InterestExpense, p.Depreciation).Scan(&p.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create financial parameters: %w", err)
	}
	return true, nil
}

// UpdateFinancialParams writes every mutable column of the parameters row
func (r *Repository) UpdateFinancialParams(ctx context.Context, p *models.FinancialParameters) error {
	seasonality, err := json.Marshal(p.Seasonality)
	if err != nil {
		return fmt.Errorf("failed to encode seasonality: %w", err)
	}
	var schedule sql.NullString
	if p.LoanSchedule != nil {
		raw, err := json.Marshal(p.LoanSchedule)
		if err != nil {
			return fmt.Errorf("failed to encode loan schedule: %w", err)
		}
		schedule = sql.NullString{String: string(raw), Valid: true}
	}
	var loanTerm sql.NullInt64
	if p.LoanTerm != nil {
		loanTerm = sql.NullInt64{Int64: int64(*p.LoanTerm), Valid: true}
	}

	query := `
		UPDATE bizplan.financial_params SET
			company_name = $2, cogs_percentage = $3, tax_rate = $4, seasonality = $5,
			current_assets = $6, current_liabilities = $7, interest_expense = $8, depreciation = $9,
			annual_operating_expenses = $10, total_annual_revenue = $11, annual_net_profit = $12,
			quarterly_net_profit = $13, net_operating_income = $14, forecasted_at = $15,
			loan_amount = $16, loan_interest_rate = $17, loan_term = $18, loan_monthly_payment = $19,
			loan_schedule = $20, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $1`
	res, err := r.q.ExecContext(ctx, query,
		p.UserID, p.CompanyName, p.COGSPercentage, p.TaxRate, string(seasonality),
		p.CurrentAssets, p.CurrentLiabilities, p.InterestExpense, p.Depreciation,
		p.AnnualOperatingExpenses, p.TotalAnnualRevenue, p.AnnualNetProfit,
		p.QuarterlyNetProfit, p.NetOperatingIncome, nullTime(p),
		nullFloat(p.LoanAmount), nullFloat(p.LoanInterestRate), loanTerm, nullFloat(p.LoanMonthlyPayment),
		schedule,
	)
	if err != nil {
		return fmt.Errorf("failed to update financial parameters: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update financial parameters: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("financial parameters: %w", ErrNotFound)
	}
	return nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullTime(p *models.FinancialParameters) sql.NullTime {
	if p.ForecastedAt == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *p.ForecastedAt, Valid: true}
}
