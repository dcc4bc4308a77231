package finance

import (
	"math"
	"testing"

	"github.com/Dan9191/bizplan/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		dscr float64
		want models.RiskLevel
	}{
		{dscr: -1, want: models.RiskHigh},
		{dscr: 0, want: models.RiskHigh},
		{dscr: 0.8, want: models.RiskHigh},
		{dscr: 0.9999, want: models.RiskHigh},
		{dscr: 1.0, want: models.RiskMedium},
		{dscr: 1.24, want: models.RiskMedium},
		{dscr: 1.25, want: models.RiskLow},
		{dscr: 3, want: models.RiskLow},
		{dscr: math.NaN(), want: models.RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AssessRisk(tt.dscr), "dscr=%v", tt.dscr)
	}
}
