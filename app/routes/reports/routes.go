package reports

import (
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/auth"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"

	"github.com/gofiber/fiber/v2"
)

func SetupReportsRoutes(app *fiber.App, d *web.Deps) {
	app.Get("/dashboard/laporan-bulanan", auth.AuthMiddleware(d.Sessions), MonthlyReportHandler(d))
	app.Get("/dashboard/logbook", auth.AuthMiddleware(d.Sessions), LogbookHandler(d))
}
