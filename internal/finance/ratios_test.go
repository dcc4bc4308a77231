package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeKeyRatios(t *testing.T) {
	r := ComputeKeyRatios(RatioInput{
		NetProfit:          20000,
		TotalRevenue:       100000,
		TotalAssets:        50000,
		CurrentAssets:      15000,
		CurrentLiabilities: 8000,
		TotalDebt:          25000,
		NetOperatingIncome: 24000,
		InterestExpense:    2000,
		Depreciation:       3000,
	})

	assert.InDelta(t, 0.4, r[RatioReturnOnAssets], 1e-12)
	assert.InDelta(t, 0.2, r[RatioNetProfitMargin], 1e-12)
	assert.InDelta(t, 2.0, r[RatioAssetTurnover], 1e-12)
	assert.InDelta(t, 1.875, r[RatioCurrent], 1e-12)
	assert.InDelta(t, 0.5, r[RatioDebtToAsset], 1e-12)
	assert.InDelta(t, 1.0, r[RatioDebtToEquity], 1e-12)
	assert.InDelta(t, 27000.0, r[RatioEBITDA], 1e-12)
	assert.InDelta(t, 13.5, r[RatioInterestCoverage], 1e-12)
	assert.InDelta(t, 23000.0, r[RatioOperatingCashFlow], 1e-12)
}

func TestComputeKeyRatios_ZeroDenominators(t *testing.T) {
	r := ComputeKeyRatios(RatioInput{
		NetProfit:          1000,
		NetOperatingIncome: 1200,
		Depreciation:       100,
		CurrentAssets:      500,
		TotalDebt:          0,
	})

	for _, name := range []string{
		RatioReturnOnAssets, RatioNetProfitMargin, RatioAssetTurnover,
		RatioCurrent, RatioDebtToAsset, RatioDebtToEquity, RatioInterestCoverage,
	} {
		assert.Equal(t, 0.0, r[name], name)
	}
	for name, v := range r {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), name)
	}
}

func TestComputeKeyRatios_DebtEqualsAssets(t *testing.T) {
	r := ComputeKeyRatios(RatioInput{TotalAssets: 1000, TotalDebt: 1000})
	assert.Equal(t, 0.0, r[RatioDebtToEquity])
	assert.Equal(t, 1.0, r[RatioDebtToAsset])
}

func TestComputeDSCR(t *testing.T) {
	assert.InDelta(t, 1.2, ComputeDSCR(120000, 100000), 1e-12)
	assert.Equal(t, 0.0, ComputeDSCR(120000, 0))
	assert.Equal(t, 0.0, ComputeDSCR(120000, -5))
	assert.InDelta(t, -0.5, ComputeDSCR(-50000, 100000), 1e-12)
}
