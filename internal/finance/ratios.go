package finance

import "github.com/Dan9191/bizplan/internal/models"

const (
	RatioReturnOnAssets    = "return_on_assets"
	RatioNetProfitMargin   = "net_profit_margin"
	RatioAssetTurnover     = "asset_turnover"
	RatioCurrent           = "current_ratio"
	RatioDebtToAsset       = "debt_to_asset"
	RatioDebtToEquity      = "debt_to_equity"
	RatioEBITDA            = "ebitda"
	RatioInterestCoverage  = "interest_coverage"
	RatioOperatingCashFlow = "operating_cash_flow"
)

// RatioInput carries pre-aggregated income statement and balance sheet figures.
type RatioInput struct {
	NetProfit          float64
	TotalRevenue       float64
	TotalAssets        float64
	CurrentAssets      float64
	CurrentLiabilities float64
	TotalDebt          float64
	NetOperatingIncome float64
	InterestExpense    float64
	Depreciation       float64
}

// ComputeKeyRatios returns liquidity, leverage, profitability and coverage
// ratios. A ratio whose denominator is zero is reported as 0.
func ComputeKeyRatios(in RatioInput) models.Ratios {
	ebitda := in.NetOperatingIncome + in.Depreciation
	equity := in.TotalAssets - in.TotalDebt

	return models.Ratios{
		RatioReturnOnAssets:    safeDiv(in.NetProfit, in.TotalAssets),
		RatioNetProfitMargin:   safeDiv(in.NetProfit, in.TotalRevenue),
		RatioAssetTurnover:     safeDiv(in.TotalRevenue, in.TotalAssets),
		RatioCurrent:           safeDiv(in.CurrentAssets, in.CurrentLiabilities),
		RatioDebtToAsset:       safeDiv(in.TotalDebt, in.TotalAssets),
		RatioDebtToEquity:      safeDiv(in.TotalDebt, equity),
		RatioEBITDA:            ebitda,
		RatioInterestCoverage:  safeDiv(ebitda, in.InterestExpense),
		RatioOperatingCashFlow: in.NetProfit + in.Depreciation,
	}
}

// ComputeDSCR is net operating income over total annual debt service, or 0
// when there is no debt service.
func ComputeDSCR(netOperatingIncome, totalAnnualDebtService float64) float64 {
	if totalAnnualDebtService <= 0 {
		return 0
	}
	return netOperatingIncome / totalAnnualDebtService
}
