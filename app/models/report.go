package models

import "github.com/shopspring/decimal"

// FinancialSummary is computed by the API for one period.
type FinancialSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// TransactionDetail is one line of the merged admin report.
type TransactionDetail struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        TransactionKind `json:"type"`
}

// PaymentStatus is a resident's dues status in the monthly report.
type PaymentStatus struct {
	UserID      int64         `json:"user_id"`
	Name        string        `json:"name"`
	HouseNumber string        `json:"house_number"`
	Status      InvoiceStatus `json:"status"`
}

type LogbookEntry struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Kind        TransactionKind `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
}

type LogbookSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	FinalBalance decimal.Decimal `json:"final_balance"`
}

// Logbook is the resident ledger for one period.
type Logbook struct {
	Transactions []LogbookEntry  `json:"transactions"`
	Summary      *LogbookSummary `json:"summary"`
}
