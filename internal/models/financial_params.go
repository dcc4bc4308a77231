package models

import "time"

// FinancialParameters is the per-user forecast configuration together with
// the outputs of the last computation and the last submitted loan.
type FinancialParameters struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	CompanyName string `json:"company_name"`

	COGSPercentage float64   `json:"cogs_percentage"`
	TaxRate        float64   `json:"tax_rate"`
	Seasonality    []float64 `json:"seasonality"`

	CurrentAssets      float64 `json:"current_assets"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	InterestExpense    float64 `json:"interest_expense"`
	Depreciation       float64 `json:"depreciation"`

	AnnualOperatingExpenses float64    `json:"annual_operating_expenses"`
	TotalAnnualRevenue      float64    `json:"total_annual_revenue"`
	AnnualNetProfit         float64    `json:"annual_net_profit"`
	QuarterlyNetProfit      float64    `json:"quarterly_net_profit"`
	NetOperatingIncome      float64    `json:"net_operating_income"`
	ForecastedAt            *time.Time `json:"forecasted_at,omitempty"`

	LoanAmount         *float64        `json:"loan_amount,omitempty"`
	LoanInterestRate   *float64        `json:"loan_interest_rate,omitempty"`
	LoanTerm           *int            `json:"loan_term,omitempty"`
	LoanMonthlyPayment *float64        `json:"loan_monthly_payment,omitempty"`
	LoanSchedule       []ScheduleEntry `json:"loan_schedule,omitempty"`
}

// DefaultFinancialParameters returns the parameters every new account starts with
func DefaultFinancialParameters(userID int64) *FinancialParameters {
	seasonality := make([]float64, 12)
	for i := range seasonality {
		seasonality[i] = 1.0
	}
	return &FinancialParameters{
		UserID:             userID,
		COGSPercentage:     35.0,
		TaxRate:            8.0,
		Seasonality:        seasonality,
		CurrentAssets:      15000.0,
		CurrentLiabilities: 8000.0,
		InterestExpense:    2000.0,
		Depreciation:       3000.0,
	}
}

// HasForecast reports whether a forecast has ever been computed
func (p *FinancialParameters) HasForecast() bool {
	return p.ForecastedAt != nil
}

// Loan returns the stored loan terms, or nil when none were submitted
func (p *FinancialParameters) Loan() *LoanTerms {
	if p.LoanAmount == nil || p.LoanInterestRate == nil || p.LoanTerm == nil {
		return nil
	}
	return &LoanTerms{
		Amount:       *p.LoanAmount,
		InterestRate: *p.LoanInterestRate,
		TermYears:    *p.LoanTerm,
	}
}
