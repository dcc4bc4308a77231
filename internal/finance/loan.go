package finance

import (
	"errors"
	"fmt"
	"math"

	"github.com/Dan9191/bizplan/internal/models"
	"github.com/shopspring/decimal"
)

// ErrInvalidLoanTerms is returned for negative, non-finite or out of range loan inputs.
var ErrInvalidLoanTerms = errors.New("invalid loan terms")

// MaxTermYears is the longest loan term accepted.
const MaxTermYears = 50

// minPayment is one cent. A positive principal never amortizes at zero.
const minPayment = 0.01

// MonthlyPayment returns the level payment of a fixed-rate loan, rounded to
// cents and never below one cent for a positive principal. Terms outside
// 1..MaxTermYears give 0.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	if principal <= 0 || termYears <= 0 || termYears > MaxTermYears {
		return 0
	}
	n := termYears * MonthsPerYear
	monthlyRate := annualRatePercent / 100 / MonthsPerYear
	var payment float64
	if monthlyRate == 0 {
		payment = RoundCents(principal / float64(n))
	} else {
		payment = RoundCents(principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(n))))
	}
	return math.Max(payment, minPayment)
}

// ComputeLoanSchedule builds a monthly amortization schedule.
//
// Amounts are carried in cents. The final entry absorbs whatever the rounded
// payment left over, so the last remaining balance is exactly zero. A zero
// principal or zero term gives an empty schedule.
func ComputeLoanSchedule(principal, annualRatePercent float64, termYears int) (models.LoanSchedule, error) {
	if !finite(principal, annualRatePercent) {
		return models.LoanSchedule{}, fmt.Errorf("%w: amounts must be finite", ErrInvalidLoanTerms)
	}
	if principal < 0 {
		return models.LoanSchedule{}, fmt.Errorf("%w: principal %.2f is negative", ErrInvalidLoanTerms, principal)
	}
	if principal == 0 {
		return models.LoanSchedule{Schedule: []models.ScheduleEntry{}}, nil
	}
	if annualRatePercent < 0 {
		return models.LoanSchedule{}, fmt.Errorf("%w: interest rate %.2f is negative", ErrInvalidLoanTerms, annualRatePercent)
	}
	if termYears < 0 {
		return models.LoanSchedule{}, fmt.Errorf("%w: term %d is negative", ErrInvalidLoanTerms, termYears)
	}
	if termYears > MaxTermYears {
		return models.LoanSchedule{}, fmt.Errorf("%w: term %d exceeds %d years", ErrInvalidLoanTerms, termYears, MaxTermYears)
	}
	if termYears == 0 {
		return models.LoanSchedule{Schedule: []models.ScheduleEntry{}}, nil
	}

	n := termYears * MonthsPerYear
	payment := MonthlyPayment(principal, annualRatePercent, termYears)

	rate := decimal.NewFromFloat(annualRatePercent).Div(decimal.NewFromInt(100 * MonthsPerYear))
	pay := decimal.NewFromFloat(payment)
	balance := decimal.NewFromFloat(principal).Round(2)

	schedule := make([]models.ScheduleEntry, 0, n)
	for month := 1; month <= n; month++ {
		interest := balance.Mul(rate).Round(2)
		principalPart := pay.Sub(interest)
		if principalPart.IsNegative() {
			principalPart = decimal.Zero
		}
		if month == n || principalPart.GreaterThan(balance) {
			principalPart = balance
		}
		balance = balance.Sub(principalPart)

		schedule = append(schedule, models.ScheduleEntry{
			Month:            month,
			PrincipalPayment: principalPart.InexactFloat64(),
			InterestPayment:  interest.InexactFloat64(),
			RemainingBalance: balance.InexactFloat64(),
		})
	}

	return models.LoanSchedule{MonthlyPayment: payment, Schedule: schedule}, nil
}
