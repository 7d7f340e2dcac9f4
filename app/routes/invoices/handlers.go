package invoices

import (
	"context"
	"strconv"

	"github.com/dimasdaffa/fe-rembugwarga/app/apiclient"
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"
	"github.com/dimasdaffa/fe-rembugwarga/app/view"

	"github.com/gofiber/fiber/v2"
)

const (
	uploadSucceeded = "Upload bukti berhasil! Menunggu verifikasi admin."
	uploadFailed    = "Upload gagal"
	proofMissing    = "Pilih file bukti pembayaran terlebih dahulu."
	invalidInvoice  = "Tagihan tidak valid."
)

func InvoicesPageHandler(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		ctrl := view.New(func(ctx context.Context) ([]models.Invoice, error) {
			return d.API.MyInvoices(ctx, sess.Token)
		})
		snap, done, err := web.Load(c, d, ctrl)
		if done {
			return err
		}

		return c.Render("dashboard/invoices", web.Page(c, "Tagihan Saya", "invoices", fiber.Map{
			"State":     snap.State.String(),
			"Invoices":  snap.Data,
			"LoadError": web.LoadFailed,
		}), web.DashboardLayout)
	}
}

// UploadProofHandler forwards the proof image to the API. A request without
// a file never reaches the API.
func UploadProofHandler(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)

		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return web.RedirectError(c, pagePath, invalidInvoice)
		}

		header, err := c.FormFile("proof")
		if err != nil || header.Size == 0 {
			return web.RedirectError(c, pagePath, proofMissing)
		}
		file, err := header.Open()
		if err != nil {
			return web.RedirectError(c, pagePath, uploadFailed)
		}
		defer file.Close()

		outcome := d.Mutations.Run(c.UserContext(), web.MutationKey(sess, "upload-proof", id), func(ctx context.Context) (string, error) {
			_, err := d.API.UploadProof(ctx, sess.Token, id, header.Filename, file)
			return uploadSucceeded, err
		})
		if !outcome.OK() {
			if apiclient.IsUnauthorized(outcome.Err) {
				return d.Expired(c)
			}
			return web.RedirectError(c, pagePath, outcome.ErrorMessage(apiclient.MessageOr(outcome.Err, uploadFailed)))
		}
		return web.RedirectMessage(c, pagePath, outcome.Message)
	}
}
