package admin

import (
	"context"
	"log"
	"strconv"

	"github.com/dimasdaffa/fe-rembugwarga/app/apiclient"
	"github.com/dimasdaffa/fe-rembugwarga/app/format"
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"
	"github.com/dimasdaffa/fe-rembugwarga/app/view"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultDues      = "65000"
	generateFailed   = "Terjadi kesalahan"
	verifySucceeded  = "Pembayaran berhasil diverifikasi!"
	verifyFailed     = "Terjadi kesalahan saat verifikasi."
	invalidPeriod    = "Periode tidak valid."
	invalidDues      = "Jumlah iuran harus berupa angka lebih dari nol."
	invalidInvoiceID = "Tagihan tidak valid."
)

func AdminDashboardHandler(c *fiber.Ctx) error {
	return c.Render("admin/dashboard", web.Page(c, "Admin Dashboard", "admin", fiber.Map{
		"Period": c.Query("period"),
		"Amount": c.Query("amount", defaultDues),
	}), web.DashboardLayout)
}

// GenerateInvoicesHandler bills every resident for one month. The API's
// message is shown as-is on success and on failure.
func GenerateInvoicesHandler(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		rawPeriod, rawAmount := c.FormValue("period"), c.FormValue("amount")
		back := web.With(web.With(dashboardPath, "period", rawPeriod), "amount", rawAmount)

		period, err := format.NormalizePeriod(rawPeriod)
		if err != nil {
			return web.RedirectError(c, back, invalidPeriod)
		}
		amount, err := format.ParseAmount(rawAmount)
		if err != nil {
			return web.RedirectError(c, back, invalidDues)
		}

		req := models.GenerateInvoicesRequest{Period: period, Amount: amount.InexactFloat64()}
		outcome := d.Mutations.Run(c.UserContext(), web.MutationKey(sess, "generate-invoices", period), func(ctx context.Context) (string, error) {
			return d.API.GenerateMonthlyInvoices(ctx, sess.Token, req)
		})
		if !outcome.OK() {
			if apiclient.IsUnauthorized(outcome.Err) {
				return d.Expired(c)
			}
			return web.RedirectError(c, back, outcome.ErrorMessage(apiclient.MessageOr(outcome.Err, generateFailed)))
		}
		return web.RedirectMessage(c, dashboardPath, outcome.Message)
	}
}

func VerificationPageHandler(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		ctrl := view.New(func(ctx context.Context) ([]models.Invoice, error) {
			return d.API.AdminInvoices(ctx, sess.Token, models.InvoiceWaitingVerification, nil)
		})
		snap, done, err := web.Load(c, d, ctrl)
		if done {
			return err
		}

		return c.Render("admin/verifikasi", web.Page(c, "Verifikasi Pembayaran", "admin", fiber.Map{
			"State":     snap.State.String(),
			"Invoices":  snap.Data,
			"LoadError": web.LoadFailed,
		}), web.DashboardLayout)
	}
}

// VerifyInvoiceHandler marks one invoice paid. The queue page re-fetches
// afterwards so the verified invoice drops out.
func VerifyInvoiceHandler(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return web.RedirectError(c, verifyPath, invalidInvoiceID)
		}

		outcome := d.Mutations.Run(c.UserContext(), web.MutationKey(sess, "verify-invoice", id), func(ctx context.Context) (string, error) {
			return verifySucceeded, d.API.VerifyInvoice(ctx, sess.Token, id)
		})
		if !outcome.OK() {
			if apiclient.IsUnauthorized(outcome.Err) {
				return d.Expired(c)
			}
			log.Printf("Verify invoice %d failed: %v", id, outcome.Err)
			return web.RedirectError(c, verifyPath, outcome.ErrorMessage(verifyFailed))
		}
		return web.RedirectMessage(c, verifyPath, outcome.Message)
	}
}
