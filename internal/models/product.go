package models

// VolumeUnit is the period a product's sales volume is expressed in
type VolumeUnit string

const (
	VolumeMonthly   VolumeUnit = "monthly"
	VolumeQuarterly VolumeUnit = "quarterly"
)

// Valid reports whether u is a known unit
func (u VolumeUnit) Valid() bool {
	return u == VolumeMonthly || u == VolumeQuarterly
}

// Frequency is how often an expense recurs
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
)

// Valid reports whether f is a known frequency
func (f Frequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyQuarterly
}

// Product represents one revenue stream
type Product struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	SalesVolume int        `json:"sales_volume"`
	VolumeUnit  VolumeUnit `json:"sales_volume_unit"`
}

// Expense represents one recurring operating cost
type Expense struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Item      string    `json:"item"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
}
