package finance

import "math"

// ProjectionAssumptions drive the multi-year P&L projection. They are
// independent of the user's live tax rate.
type ProjectionAssumptions struct {
	RevenueGrowth float64 // Annual, fraction
	OpExGrowth    float64 // Annual, fraction
	TaxRate       float64 // Fraction
	Years         int
}

// DefaultProjectionAssumptions returns 10% revenue growth, 5% operating
// expense growth and a flat 25% tax over five years.
func DefaultProjectionAssumptions() ProjectionAssumptions {
	return ProjectionAssumptions{
		RevenueGrowth: 0.10,
		OpExGrowth:    0.05,
		TaxRate:       0.25,
		Years:         5,
	}
}

// ProjectionBase is the first projected year.
type ProjectionBase struct {
	Revenue           float64
	COGSPercentage    float64
	OperatingExpenses float64
	Depreciation      float64
	InterestExpense   float64
}

// ProjectionYear is one column of the projected P&L.
type ProjectionYear struct {
	Year              int
	Revenue           float64
	CostOfGoodsSold   float64
	GrossProfit       float64
	OperatingExpenses float64
	EBITDA            float64
	Depreciation      float64
	EBIT              float64
	InterestExpense   float64
	EBT               float64
	Tax               float64
	NetIncome         float64
}

// ProjectProfitAndLoss compounds revenue and operating expenses year over year.
// Depreciation and interest stay flat. Figures are rounded to cents.
func ProjectProfitAndLoss(base ProjectionBase, a ProjectionAssumptions) []ProjectionYear {
	if a.Years <= 0 {
		return nil
	}
	years := make([]ProjectionYear, 0, a.Years)
	for y := 0; y < a.Years; y++ {
		revenue := base.Revenue * math.Pow(1+a.RevenueGrowth, float64(y))
		opex := base.OperatingExpenses * math.Pow(1+a.OpExGrowth, float64(y))
		cogs := revenue * base.COGSPercentage / 100
		gross := revenue - cogs
		ebitda := gross - opex
		ebit := ebitda - base.Depreciation
		ebt := ebit - base.InterestExpense
		tax := math.Max(0, ebt*a.TaxRate)

		years = append(years, ProjectionYear{
			Year:              y + 1,
			Revenue:           RoundCents(revenue),
			CostOfGoodsSold:   RoundCents(cogs),
			GrossProfit:       RoundCents(gross),
			OperatingExpenses: RoundCents(opex),
			EBITDA:            RoundCents(ebitda),
			Depreciation:      RoundCents(base.Depreciation),
			EBIT:              RoundCents(ebit),
			InterestExpense:   RoundCents(base.InterestExpense),
			EBT:               RoundCents(ebt),
			Tax:               RoundCents(tax),
			NetIncome:         RoundCents(ebt - tax),
		})
	}
	return years
}
