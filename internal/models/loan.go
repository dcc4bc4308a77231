package models

// LoanTerms are the inputs of the loan calculator
type LoanTerms struct {
	Amount       float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"` // Annual, percent
	TermYears    int     `json:"loan_term"`
}

// ScheduleEntry is one monthly line of an amortization schedule
type ScheduleEntry struct {
	Month            int     `json:"month"`
	PrincipalPayment float64 `json:"principal_payment"`
	InterestPayment  float64 `json:"interest_payment"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// LoanSchedule is a fixed-rate amortization result
type LoanSchedule struct {
	MonthlyPayment float64         `json:"monthly_payment"`
	Schedule       []ScheduleEntry `json:"schedule"`
}

// LoanView is what the loan calculator shows a user
type LoanView struct {
	Terms              *LoanTerms         `json:"terms,omitempty"`
	QuarterlyNetProfit float64            `json:"quarterly_net_profit"`
	MonthlyNetProfit   float64            `json:"monthly_net_profit"`
	MonthlyPayment     float64            `json:"monthly_payment"`
	Schedule           []ScheduleEntry    `json:"schedule,omitempty"`
	DSCR               float64            `json:"dscr"`
	RiskLevel          RiskLevel          `json:"risk_level,omitempty"`
	Assessment         *AssessmentMessage `json:"assessment,omitempty"`
}
