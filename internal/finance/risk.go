package finance

import (
	"math"

	"github.com/Dan9191/bizplan/internal/models"
)

// DSCR tier boundaries.
const (
	MediumRiskDSCR = 1.0
	LowRiskDSCR    = 1.25
)

// AssessRisk maps a debt service coverage ratio to its risk tier.
func AssessRisk(dscr float64) models.RiskLevel {
	switch {
	case math.IsNaN(dscr), dscr < MediumRiskDSCR:
		return models.RiskHigh
	case dscr < LowRiskDSCR:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
