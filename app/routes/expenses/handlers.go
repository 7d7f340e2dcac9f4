package expenses

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/dimasdaffa/fe-rembugwarga/app/apiclient"
	"github.com/dimasdaffa/fe-rembugwarga/app/format"
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"
	"github.com/dimasdaffa/fe-rembugwarga/app/view"

	"github.com/gofiber/fiber/v2"
)

const (
	createSucceeded = "Data pengeluaran berhasil ditambahkan."
	createFailed    = "Gagal menambah data."
	deleteSucceeded = "Data pengeluaran berhasil dihapus."
	deleteFailed    = "Gagal menghapus data."
	deleteConfirm   = "Apakah Anda yakin ingin menghapus data ini?"
	formIncomplete  = "Deskripsi, jumlah, dan tanggal wajib diisi."
	invalidAmount   = "Jumlah harus berupa angka lebih dari nol."
	invalidDate     = "Tanggal tidak valid."
)

// expenseForm echoes a rejected submission back into the form.
type expenseForm struct {
	Description string
	Amount      string
	Date        string
}

func ExpensesPageHandler(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		ctrl := view.New(func(ctx context.Context) ([]models.Expense, error) {
			return d.API.Expenses(ctx, sess.Token, nil)
		})
		snap, done, err := web.Load(c, d, ctrl)
		if done {
			return err
		}

		form := expenseForm{
			Description: c.Query("description"),
			Amount:      c.Query("amount"),
			Date:        c.Query("date"),
		}
		return c.Render("admin/expenses", web.Page(c, "Manajemen Pengeluaran", "admin", fiber.Map{
			"State":         snap.State.String(),
			"Expenses":      snap.Data,
			"LoadError":     web.LoadFailed,
			"Form":          form,
			"FormOpen":      c.Query("error") != "" && form != (expenseForm{}),
			"DeleteConfirm": deleteConfirm,
		}), web.DashboardLayout)
	}
}

func CreateExpenseHandler(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		form := expenseForm{
			Description: strings.TrimSpace(c.FormValue("description")),
			Amount:      strings.TrimSpace(c.FormValue("amount")),
			Date:        strings.TrimSpace(c.FormValue("date")),
		}
		back := web.With(web.With(web.With(pagePath, "description", form.Description), "amount", form.Amount), "date", form.Date)

		if form.Description == "" || form.Amount == "" || form.Date == "" {
			return web.RedirectError(c, back, formIncomplete)
		}
		amount, err := format.ParseAmount(form.Amount)
		if err != nil {
			return web.RedirectError(c, back, invalidAmount)
		}
		if _, err := time.Parse("2006-01-02", form.Date); err != nil {
			return web.RedirectError(c, back, invalidDate)
		}

		e := models.NewExpense{Description: form.Description, Amount: amount.InexactFloat64(), Date: form.Date}
		key := web.MutationKey(sess, "create-expense", form.Description+"|"+form.Amount+"|"+form.Date)
		outcome := d.Mutations.Run(c.UserContext(), key, func(ctx context.Context) (string, error) {
			return createSucceeded, d.API.CreateExpense(ctx, sess.Token, e)
		})
		if !outcome.OK() {
			if apiclient.IsUnauthorized(outcome.Err) {
				return d.Expired(c)
			}
			log.Printf("Create expense failed: %v", outcome.Err)
			return web.RedirectError(c, back, outcome.ErrorMessage(createFailed))
		}
		return web.RedirectMessage(c, pagePath, outcome.Message)
	}
}

func DeleteExpenseHandler(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return web.RedirectError(c, pagePath, deleteFailed)
		}

		outcome := d.Mutations.Run(c.UserContext(), web.MutationKey(sess, "delete-expense", id), func(ctx context.Context) (string, error) {
			return deleteSucceeded, d.API.DeleteExpense(ctx, sess.Token, id)
		})
		if !outcome.OK() {
			if apiclient.IsUnauthorized(outcome.Err) {
				return d.Expired(c)
			}
			log.Printf("Delete expense %d failed: %v", id, outcome.Err)
			return web.RedirectError(c, pagePath, outcome.ErrorMessage(deleteFailed))
		}
		return web.RedirectMessage(c, pagePath, outcome.Message)
	}
}
