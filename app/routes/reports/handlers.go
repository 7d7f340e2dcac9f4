package reports

import (
	"context"

	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/dimasdaffa/fe-rembugwarga/app/report"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"
	"github.com/dimasdaffa/fe-rembugwarga/app/view"

	"github.com/gofiber/fiber/v2"
)

type monthlyReport struct {
	Statuses []models.PaymentStatus
	Expenses []models.Expense
}

// MonthlyReportHandler shows payment statuses and expenses for the chosen
// month. Both must load or neither is shown.
func MonthlyReportHandler(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		ctrl := view.New(func(ctx context.Context) (monthlyReport, error) {
			period, _ := report.ParsePeriod(c.Query("year"), c.Query("month"))
			var r monthlyReport
			err := view.All(ctx,
				func(ctx context.Context) (err error) {
					r.Statuses, err = d.API.PaymentStatuses(ctx, sess.Token, period)
					return err
				},
				func(ctx context.Context) (err error) {
					r.Expenses, err = d.API.ReportExpenses(ctx, sess.Token, period)
					return err
				},
			)
			return r, err
		})

		snap, done, err := load(c, d, ctrl)
		if done {
			return err
		}

		return c.Render("dashboard/laporan-bulanan", web.Page(c, "Laporan Bulanan", "laporan-bulanan", web.PeriodForm(c, "/dashboard/laporan-bulanan", "Pilih Periode", "Tampilkan", fiber.Map{
			"State":     snap.State.String(),
			"Statuses":  snap.Data.Statuses,
			"Expenses":  snap.Data.Expenses,
			"LoadError": web.ReportFailed,
		})), web.DashboardLayout)
	}
}

func LogbookHandler(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		ctrl := view.New(func(ctx context.Context) (*models.Logbook, error) {
			period, _ := report.ParsePeriod(c.Query("year"), c.Query("month"))
			return d.API.Logbook(ctx, sess.Token, period)
		})

		snap, done, err := load(c, d, ctrl)
		if done {
			return err
		}

		return c.Render("dashboard/logbook", web.Page(c, "Logbook Keuangan", "logbook", web.PeriodForm(c, "/dashboard/logbook", "Pilih Periode", "Tampilkan", fiber.Map{
			"State":     snap.State.String(),
			"Logbook":   snap.Data,
			"LoadError": web.LogbookFailed,
		})), web.DashboardLayout)
	}
}

// load runs the controller only once a period was submitted; until then the
// page stays idle.
func load[T any](c *fiber.Ctx, d *web.Deps, ctrl *view.Controller[T]) (view.Snapshot[T], bool, error) {
	if _, ok := report.ParsePeriod(c.Query("year"), c.Query("month")); !ok {
		return ctrl.Snapshot(), false, nil
	}
	return web.Load(c, d, ctrl)
}
