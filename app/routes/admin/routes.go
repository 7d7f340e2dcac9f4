package admin

import (
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/auth"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"

	"github.com/gofiber/fiber/v2"
)

const (
	dashboardPath = "/admin/dashboard"
	verifyPath    = "/admin/verifikasi"
	reportPath    = "/admin/laporan"
)

func SetupAdminRoutes(app *fiber.App, d *web.Deps) {
	pengurus := auth.RoleMiddleware(d.Sessions, models.RolePengurus)

	admin := app.Group("/admin")
	admin.Get("/dashboard", pengurus, AdminDashboardHandler)
	admin.Post("/invoices/generate", pengurus, GenerateInvoicesHandler(d))

	admin.Get("/verifikasi", pengurus, VerificationPageHandler(d))
	admin.Post("/verifikasi/:id", pengurus, VerifyInvoiceHandler(d))

	admin.Get("/laporan", pengurus, ReportPageHandler(d))
	admin.Get("/laporan/export.pdf", pengurus, ExportReportHandler(d, pdfExport))
	admin.Get("/laporan/export.xlsx", pengurus, ExportReportHandler(d, xlsxExport))
}
