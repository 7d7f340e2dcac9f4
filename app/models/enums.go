package models

import (
	"encoding/json"
	"strings"
)

// Role is the session role issued by the API.
type Role string

const (
	RoleWarga    Role = "warga"
	RolePengurus Role = "pengurus"
)

// ParseRole returns the role for a raw cookie or API value. Unknown values yield "".
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleWarga:
		return RoleWarga
	case RolePengurus:
		return RolePengurus
	}
	return ""
}

// LandingPath is where a role is sent after login or on a denied page.
func (r Role) LandingPath() string {
	if r == RolePengurus {
		return "/admin/dashboard"
	}
	return "/dashboard"
}

// InvoiceStatus is the dues invoice lifecycle state. Transitions belong to the API.
type InvoiceStatus string

const (
	InvoicePending             InvoiceStatus = "pending"
	InvoiceWaitingVerification InvoiceStatus = "waiting_verification"
	InvoicePaid                InvoiceStatus = "paid"
)

func (s *InvoiceStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = ParseInvoiceStatus(raw)
	return nil
}

// ParseInvoiceStatus normalizes "awaiting_verification" to InvoiceWaitingVerification.
func ParseInvoiceStatus(raw string) InvoiceStatus {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "awaiting_verification" {
		return InvoiceWaitingVerification
	}
	return InvoiceStatus(raw)
}

// TransactionKind marks a report line as income or expense.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

func (k TransactionKind) Label() string {
	if k == KindIncome {
		return "Pemasukan"
	}
	return "Pengeluaran"
}
