// Package finance holds the numeric models behind a business plan: the
// profitability forecast, key accounting ratios, fixed-rate loan amortization,
// debt-service risk tiers and the multi-year P&L projection.
//
// Every function here is pure. Callers fetch records, clamp negative amounts
// to zero and persist results; nothing in this package performs I/O.
package finance

const (
	MonthsPerYear    = 12
	QuartersPerYear  = 4
	MonthsPerQuarter = MonthsPerYear / QuartersPerYear
)
