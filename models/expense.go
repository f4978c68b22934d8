package models

// ExpenseCategories is the fixed category enumeration for expenses
var ExpenseCategories = []string{"Snacks", "Rent", "Salary Advance", "Marketing", "Others"}

// ExpenseRequest is the request body for creating/updating expenses
type ExpenseRequest struct {
	Category    string  `json:"category" validate:"required,oneof=Snacks Rent 'Salary Advance' Marketing Others"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date" validate:"required"`
	PaidTo      string  `json:"paidTo"`
	Description string  `json:"description"`
	BillURL     string  `json:"billUrl"`
}
