package models

// Ratios maps a ratio name to its value
type Ratios map[string]float64

// Statement is an income statement for one period
type Statement struct {
	Period            string  `json:"period"`
	Revenue           float64 `json:"revenue"`
	CostOfGoodsSold   float64 `json:"cost_of_goods_sold"`
	GrossProfit       float64 `json:"gross_profit"`
	OperatingExpenses float64 `json:"operating_expenses"`
	OperatingProfit   float64 `json:"operating_profit"` // Profit before tax, used as NOI
	Tax               float64 `json:"tax"`
	NetProfit         float64 `json:"net_profit"`
	ProfitMargin      float64 `json:"profit_margin"` // Percent
	Ratios            Ratios  `json:"ratios,omitempty"`
}

// Forecast holds the annual statement and the four seasonality-weighted quarters
type Forecast struct {
	Annual    Statement    `json:"annual"`
	Quarterly [4]Statement `json:"quarterly"`
}

// ForecastView is a forecast together with the balance sheet it was computed against
type ForecastView struct {
	Forecast    Forecast             `json:"forecast"`
	Assets      []Asset              `json:"assets"`
	Liabilities []Liability          `json:"liabilities"`
	Params      *FinancialParameters `json:"financial_params"`
}
