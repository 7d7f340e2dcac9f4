package dashboard

import (
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/auth"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, d *web.Deps) {
	app.Get("/dashboard", auth.AuthMiddleware(d.Sessions), GetDashboard(d))
	app.Get("/dashboard/notifications", auth.AuthMiddleware(d.Sessions), GetNotifications(d))
}
