package models

import "github.com/shopspring/decimal"

// Invoice is a monthly dues (iuran) invoice.
type Invoice struct {
	ID              int64           `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Period          string          `json:"period"`
	Status          InvoiceStatus   `json:"status"`
	PaymentProofURL *string         `json:"payment_proof_url"`
	UpdatedAt       string          `json:"updated_at,omitempty"`
	User            *InvoiceUser    `json:"user,omitempty"` // only on admin listings
}

type InvoiceUser struct {
	Name        string `json:"name"`
	HouseNumber string `json:"house_number"`
}

// CanUploadProof reports whether the resident may still attach payment proof.
func (i Invoice) CanUploadProof() bool {
	return i.Status == InvoicePending
}

// GenerateInvoicesRequest asks the API to bill every resident for one period.
type GenerateInvoicesRequest struct {
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
}
