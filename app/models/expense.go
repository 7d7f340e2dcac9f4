package models

import "github.com/shopspring/decimal"

// Expense is an association expense recorded by a pengurus.
type Expense struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

// NewExpense is the create-expense request body.
type NewExpense struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}
