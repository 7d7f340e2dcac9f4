// Package report builds the admin monthly financial report: the API summary
// plus a single ledger merged from paid invoices and expenses.
package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dimasdaffa/fe-rembugwarga/app/apiclient"
	"github.com/dimasdaffa/fe-rembugwarga/app/format"
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/dimasdaffa/fe-rembugwarga/app/view"
)

// Source is the subset of the API client the report needs.
type Source interface {
	FinancialSummary(ctx context.Context, token string, p apiclient.Period) (*models.FinancialSummary, error)
	AdminInvoices(ctx context.Context, token string, status models.InvoiceStatus, period *apiclient.Period) ([]models.Invoice, error)
	Expenses(ctx context.Context, token string, period *apiclient.Period) ([]models.Expense, error)
}

type Report struct {
	Period       apiclient.Period
	Summary      models.FinancialSummary
	Transactions []models.TransactionDetail
}

// Title renders e.g. "Maret 2025".
func (r *Report) Title() string {
	return fmt.Sprintf("%s %d", format.MonthName(time.Month(r.Period.Month)), r.Period.Year)
}

// ParsePeriod reads the year/month query pair. ok is false when either is
// missing or out of range; pages stay idle in that case.
func ParsePeriod(year, month string) (apiclient.Period, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y < 1900 || y > 9999 {
		return apiclient.Period{}, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return apiclient.Period{}, false
	}
	return apiclient.Period{Year: y, Month: m}, true
}

// Load fetches the three report resources concurrently. Any failure fails the
// whole report.
func Load(ctx context.Context, src Source, token string, p apiclient.Period) (*Report, error) {
	var (
		summary  *models.FinancialSummary
		invoices []models.Invoice
		expenses []models.Expense
	)
	err := view.All(ctx,
		func(ctx context.Context) (err error) {
			summary, err = src.FinancialSummary(ctx, token, p)
			return err
		},
		func(ctx context.Context) (err error) {
			invoices, err = src.AdminInvoices(ctx, token, models.InvoicePaid, &p)
			return err
		},
		func(ctx context.Context) (err error) {
			expenses, err = src.Expenses(ctx, token, &p)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	r := &Report{Period: p, Transactions: MergeTransactions(invoices, expenses)}
	if summary != nil {
		r.Summary = *summary
	}
	return r, nil
}

// MergeTransactions turns paid invoices into income lines and expenses into
// expense lines, newest first. Ids are prefixed so the two sets never collide.
func MergeTransactions(invoices []models.Invoice, expenses []models.Expense) []models.TransactionDetail {
	out := make([]models.TransactionDetail, 0, len(invoices)+len(expenses))
	for _, inv := range invoices {
		out = append(out, models.TransactionDetail{
			ID:          "inc-" + strconv.FormatInt(inv.ID, 10),
			Date:        inv.UpdatedAt,
			Description: incomeDescription(inv),
			Amount:      inv.Amount,
			Kind:        models.KindIncome,
		})
	}
	for _, exp := range expenses {
		out = append(out, models.TransactionDetail{
			ID:          "exp-" + strconv.FormatInt(exp.ID, 10),
			Date:        exp.Date,
			Description: exp.Description,
			Amount:      exp.Amount,
			Kind:        models.KindExpense,
		})
	}

	// unparseable dates sink to the bottom
	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := format.ParseTime(out[i].Date)
		tj, okJ := format.ParseTime(out[j].Date)
		if okI != okJ {
			return okI
		}
		return ti.After(tj)
	})
	return out
}

func incomeDescription(inv models.Invoice) string {
	name, house := "-", "-"
	if inv.User != nil {
		if inv.User.Name != "" {
			name = inv.User.Name
		}
		if inv.User.HouseNumber != "" {
			house = inv.User.HouseNumber
		}
	}
	return fmt.Sprintf("Iuran dari %s (%s)", name, house)
}
