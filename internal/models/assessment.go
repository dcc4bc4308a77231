package models

// RiskLevel tags a debt service coverage tier
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high_risk"
	RiskMedium RiskLevel = "medium_risk"
	RiskLow    RiskLevel = "low_risk"
)

// AssessmentMessage is the user-facing text shown for a risk level
type AssessmentMessage struct {
	RiskLevel   RiskLevel `json:"risk_level"`
	Status      string    `json:"status"`
	Caption     string    `json:"caption"`
	StatusClass string    `json:"status_class"`
	DSCRStatus  string    `json:"dscr_status"`
}
