package admin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/dimasdaffa/fe-rembugwarga/app/apiclient"
	"github.com/dimasdaffa/fe-rembugwarga/app/report"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"
	"github.com/dimasdaffa/fe-rembugwarga/app/view"

	"github.com/gofiber/fiber/v2"
)

type exportFormat struct {
	ext         string
	contentType string
	write       func(w io.Writer, r *report.Report) error
}

var (
	pdfExport  = exportFormat{ext: "pdf", contentType: "application/pdf", write: report.WritePDF}
	xlsxExport = exportFormat{ext: "xlsx", contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", write: report.WriteXLSX}
)

// ReportPageHandler stays idle until a period is submitted.
func ReportPageHandler(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		period, ok := report.ParsePeriod(c.Query("year"), c.Query("month"))
		ctrl := view.New(func(ctx context.Context) (*report.Report, error) {
			return report.Load(ctx, d.API, sess.Token, period)
		})

		snap := ctrl.Snapshot()
		if ok {
			var done bool
			var err error
			if snap, done, err = web.Load(c, d, ctrl); done {
				return err
			}
		}

		return c.Render("admin/laporan", web.Page(c, "Laporan Keuangan", "admin", web.PeriodForm(c, reportPath, "Pilih Periode Laporan", "Tampilkan Laporan", fiber.Map{
			"State":     snap.State.String(),
			"Report":    snap.Data,
			"LoadError": web.ReportFailed,
		})), web.DashboardLayout)
	}
}

// ExportReportHandler downloads the same report the page shows.
func ExportReportHandler(d *web.Deps, f exportFormat) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		period, ok := report.ParsePeriod(c.Query("year"), c.Query("month"))
		if !ok {
			return web.RedirectError(c, reportPath, invalidPeriod)
		}

		r, err := report.Load(c.UserContext(), d.API, sess.Token, period)
		if err != nil {
			if apiclient.IsUnauthorized(err) {
				return d.Expired(c)
			}
			back := fmt.Sprintf("%s?year=%d&month=%d", reportPath, period.Year, period.Month)
			return web.RedirectError(c, back, web.ReportFailed)
		}

		var buf bytes.Buffer
		if err := f.write(&buf, r); err != nil {
			log.Printf("Failed to build %s report: %v", f.ext, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to build report")
		}

		filename := fmt.Sprintf("laporan-keuangan-%04d-%02d.%s", period.Year, period.Month, f.ext)
		c.Set(fiber.HeaderContentType, f.contentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(buf.Bytes())
	}
}
