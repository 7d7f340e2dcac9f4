package invoices

import (
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/auth"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"

	"github.com/gofiber/fiber/v2"
)

const pagePath = "/dashboard/invoices"

func SetupInvoicesRoutes(app *fiber.App, d *web.Deps) {
	web := app.Group(pagePath, auth.AuthMiddleware(d.Sessions))
	web.Get("/", InvoicesPageHandler(d))
	web.Post("/:id/proof", UploadProofHandler(d))
}
