package finance

import (
	"fmt"

	"github.com/Dan9191/bizplan/internal/models"
)

// BaseMonthlyRevenue is a product's revenue in an average month.
func BaseMonthlyRevenue(p models.Product) float64 {
	var annualVolume float64
	if p.VolumeUnit == models.VolumeMonthly {
		annualVolume = float64(p.SalesVolume) * MonthsPerYear
	} else {
		annualVolume = float64(p.SalesVolume) * QuartersPerYear
	}
	return p.Price * annualVolume / MonthsPerYear
}

// ProductQuarterlyRevenue spreads a product's revenue over the quarters
// according to the seasonality profile.
func ProductQuarterlyRevenue(p models.Product, seasonality Seasonality) [QuartersPerYear]float64 {
	base := BaseMonthlyRevenue(p)
	weights := seasonality.QuarterWeights()
	var out [QuartersPerYear]float64
	for q, w := range weights {
		out[q] = base * w
	}
	return out
}

// AnnualOperatingExpenses sums recurring expenses over a year. Monthly items
// count twelve times, anything else four times.
func AnnualOperatingExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if e.Frequency == models.FrequencyMonthly {
			total += e.Amount * MonthsPerYear
		} else {
			total += e.Amount * QuartersPerYear
		}
	}
	return total
}

// ComputeForecast derives the annual income statement and four independent
// quarterly statements from product sales.
//
// Preconditions: prices, volumes and operating expenses are non-negative and
// the percentages are in [0,100]. Quarterly revenue is seasonality weighted,
// so the quarters sum to the annual revenue while quarterly profit is not
// simply a quarter of the annual figure. Quarterly COGS uses the same
// percentage, quarterly operating expenses are a quarter of the annual amount
// and tax is computed per quarter.
func ComputeForecast(
	products []models.Product,
	cogsPercentage, annualOperatingExpenses, taxRate float64,
	seasonality Seasonality,
) models.Forecast {
	var monthlyRevenue float64
	for _, p := range products {
		monthlyRevenue += BaseMonthlyRevenue(p)
	}

	forecast := models.Forecast{
		Annual: statement("annual", monthlyRevenue*MonthsPerYear, cogsPercentage, annualOperatingExpenses, taxRate),
	}

	weights := seasonality.QuarterWeights()
	quarterlyOpEx := annualOperatingExpenses / QuartersPerYear
	for q, w := range weights {
		forecast.Quarterly[q] = statement(fmt.Sprintf("Q%d", q+1), monthlyRevenue*w, cogsPercentage, quarterlyOpEx, taxRate)
	}
	return forecast
}

func statement(period string, revenue, cogsPercentage, operatingExpenses, taxRate float64) models.Statement {
	cogs := revenue * cogsPercentage / 100
	gross := revenue - cogs
	operatingProfit := gross - operatingExpenses
	tax := operatingProfit * taxRate / 100
	if tax < 0 {
		tax = 0
	}
	net := operatingProfit - tax

	return models.Statement{
		Period:            period,
		Revenue:           revenue,
		CostOfGoodsSold:   cogs,
		GrossProfit:       gross,
		OperatingExpenses: operatingExpenses,
		OperatingProfit:   operatingProfit,
		Tax:               tax,
		NetProfit:         net,
		ProfitMargin:      safeDiv(net, revenue) * 100,
	}
}
