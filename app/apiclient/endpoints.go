package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dimasdaffa/fe-rembugwarga/app/models"
)

// Period selects one report month.
type Period struct {
	Year  int
	Month int
}

func (p Period) values() url.Values {
	v := url.Values{}
	v.Set("year", strconv.Itoa(p.Year))
	v.Set("month", strconv.Itoa(p.Month))
	return v
}

func (p Period) query() string {
	return p.values().Encode()
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	err := c.Send(ctx, http.MethodPost, "/login", "", JSON(models.LoginRequest{Email: email, Password: password}), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.Send(ctx, http.MethodPost, "/logout", token, nil, nil)
}

// Announcements is public; the token is not sent.
func (c *Client) Announcements(ctx context.Context) ([]models.Announcement, error) {
	var out List[models.Announcement]
	if err := c.Get(ctx, "/announcements", "", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) Notifications(ctx context.Context, token string) ([]models.Notification, error) {
	var out List[models.Notification]
	if err := c.Get(ctx, "/notifications", token, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// MyInvoices lists the signed-in resident's invoices.
func (c *Client) MyInvoices(ctx context.Context, token string) ([]models.Invoice, error) {
	var out List[models.Invoice]
	if err := c.Get(ctx, "/invoices", token, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// UploadProof returns the API's success message, if any.
func (c *Client) UploadProof(ctx context.Context, token string, invoiceID int64, filename string, file io.Reader) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	path := "/invoices/" + strconv.FormatInt(invoiceID, 10) + "/upload-proof"
	if err := c.Send(ctx, http.MethodPost, path, token, File("proof", filename, file), &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// AdminInvoices lists invoices filtered by status. An empty status lists all.
func (c *Client) AdminInvoices(ctx context.Context, token string, status models.InvoiceStatus, period *Period) ([]models.Invoice, error) {
	v := url.Values{}
	if period != nil {
		v = period.values()
	}
	if status != "" {
		v.Set("status", string(status))
	}
	path := "/admin/invoices"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}
	var out List[models.Invoice]
	if err := c.Get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) VerifyInvoice(ctx context.Context, token string, invoiceID int64) error {
	path := "/admin/invoices/" + strconv.FormatInt(invoiceID, 10) + "/verify"
	return c.Send(ctx, http.MethodPatch, path, token, nil, nil)
}

// GenerateMonthlyInvoices returns the API's message verbatim.
func (c *Client) GenerateMonthlyInvoices(ctx context.Context, token string, req models.GenerateInvoicesRequest) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.Send(ctx, http.MethodPost, "/admin/invoices/generate-monthly", token, JSON(req), &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) Expenses(ctx context.Context, token string, period *Period) ([]models.Expense, error) {
	path := "/admin/expenses"
	if period != nil {
		path += "?" + period.query()
	}
	var out List[models.Expense]
	if err := c.Get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) CreateExpense(ctx context.Context, token string, e models.NewExpense) error {
	return c.Send(ctx, http.MethodPost, "/admin/expenses", token, JSON(e), nil)
}

func (c *Client) DeleteExpense(ctx context.Context, token string, id int64) error {
	return c.Send(ctx, http.MethodDelete, "/admin/expenses/"+strconv.FormatInt(id, 10), token, nil, nil)
}

func (c *Client) FinancialSummary(ctx context.Context, token string, p Period) (*models.FinancialSummary, error) {
	var out struct {
		Summary *models.FinancialSummary `json:"summary"`
	}
	if err := c.Get(ctx, "/admin/financial-summary?"+p.query(), token, &out); err != nil {
		return nil, err
	}
	if out.Summary == nil {
		return &models.FinancialSummary{}, nil
	}
	return out.Summary, nil
}

func (c *Client) PaymentStatuses(ctx context.Context, token string, p Period) ([]models.PaymentStatus, error) {
	var out List[models.PaymentStatus]
	if err := c.Get(ctx, "/reports/payment-status?"+p.query(), token, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) ReportExpenses(ctx context.Context, token string, p Period) ([]models.Expense, error) {
	var out List[models.Expense]
	if err := c.Get(ctx, "/reports/expenses?"+p.query(), token, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) Logbook(ctx context.Context, token string, p Period) (*models.Logbook, error) {
	var out models.Logbook
	if err := c.Get(ctx, "/reports/logbook?"+p.query(), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
