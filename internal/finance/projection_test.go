package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectProfitAndLoss_Defaults(t *testing.T) {
	years := ProjectProfitAndLoss(ProjectionBase{
		Revenue:           100000,
		COGSPercentage:    40,
		OperatingExpenses: 30000,
		Depreciation:      3000,
		InterestExpense:   2000,
	}, DefaultProjectionAssumptions())

	require.Len(t, years, 5)

	y1 := years[0]
	assert.Equal(t, 1, y1.Year)
	assert.Equal(t, 100000.0, y1.Revenue)
	assert.Equal(t, 40000.0, y1.CostOfGoodsSold)
	assert.Equal(t, 60000.0, y1.GrossProfit)
	assert.Equal(t, 30000.0, y1.EBITDA)
	assert.Equal(t, 27000.0, y1.EBIT)
	assert.Equal(t, 25000.0, y1.EBT)
	assert.Equal(t, 6250.0, y1.Tax)
	assert.Equal(t, 18750.0, y1.NetIncome)

	y2 := years[1]
	assert.Equal(t, 110000.0, y2.Revenue)
	assert.Equal(t, 31500.0, y2.OperatingExpenses)

	assert.Equal(t, 146410.0, years[4].Revenue)
}

func TestProjectProfitAndLoss_CustomAssumptions(t *testing.T) {
	years := ProjectProfitAndLoss(ProjectionBase{Revenue: 1000, OperatingExpenses: 2000}, ProjectionAssumptions{
		RevenueGrowth: 0,
		OpExGrowth:    0,
		TaxRate:       0.3,
		Years:         2,
	})

	require.Len(t, years, 2)
	assert.Equal(t, -1000.0, years[1].EBT)
	assert.Equal(t, 0.0, years[1].Tax)
	assert.Equal(t, -1000.0, years[1].NetIncome)
}

func TestProjectProfitAndLoss_NoYears(t *testing.T) {
	assert.Empty(t, ProjectProfitAndLoss(ProjectionBase{Revenue: 1}, ProjectionAssumptions{}))
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 1.23, RoundCents(1.234))
	assert.Equal(t, 1.24, RoundCents(1.235))
	assert.Equal(t, -1.24, RoundCents(-1.235))
}
