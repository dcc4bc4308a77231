package models

// ProductDetails is the product and expense sheet of a user
type ProductDetails struct {
	CompanyName string    `json:"company_name"`
	Products    []Product `json:"products"`
	Expenses    []Expense `json:"expenses"`
}
