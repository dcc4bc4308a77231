package finance

import "math"

// Seasonality holds one demand multiplier per calendar month.
type Seasonality [MonthsPerYear]float64

// UniformSeasonality returns twelve factors of 1.0.
func UniformSeasonality() Seasonality {
	var s Seasonality
	for i := range s {
		s[i] = 1.0
	}
	return s
}

// ParseSeasonality converts stored or submitted factors into a Seasonality.
// Anything other than exactly twelve positive finite numbers yields the
// uniform profile.
func ParseSeasonality(values []float64) Seasonality {
	if len(values) != MonthsPerYear {
		return UniformSeasonality()
	}
	var s Seasonality
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return UniformSeasonality()
		}
		s[i] = v
	}
	return s
}

// Normalized scales the factors so they sum to twelve (average 1.0).
func (s Seasonality) Normalized() Seasonality {
	var sum float64
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return UniformSeasonality()
		}
		sum += v
	}
	var out Seasonality
	for i, v := range s {
		out[i] = v * MonthsPerYear / sum
	}
	return out
}

// QuarterWeights returns the normalized factor sum of each quarter.
func (s Seasonality) QuarterWeights() [QuartersPerYear]float64 {
	n := s.Normalized()
	var w [QuartersPerYear]float64
	for m, f := range n {
		w[m/MonthsPerQuarter] += f
	}
	return w
}

// Slice returns the factors as a slice for serialization.
func (s Seasonality) Slice() []float64 {
	out := make([]float64, MonthsPerYear)
	copy(out, s[:])
	return out
}
