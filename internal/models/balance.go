package models

// Asset is a balance-sheet asset line
type Asset struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Liability is a balance-sheet liability line
type Liability struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}
