package models

// StartupActivity is one weighted item of the business launch checklist
type StartupActivity struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`   // Percent of the whole checklist
	Progress    int    `json:"progress"` // Percent complete
}

// StartupChecklist is the list of activities with its totals
type StartupChecklist struct {
	Activities  []StartupActivity `json:"activities"`
	TotalWeight int               `json:"total_weight"`
	Readiness   float64           `json:"readiness"`
}
