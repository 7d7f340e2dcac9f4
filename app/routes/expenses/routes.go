package expenses

import (
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/auth"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"

	"github.com/gofiber/fiber/v2"
)

const pagePath = "/admin/expenses"

func SetupExpensesRoutes(app *fiber.App, d *web.Deps) {
	web := app.Group(pagePath, auth.RoleMiddleware(d.Sessions, models.RolePengurus))
	web.Get("/", ExpensesPageHandler(d))
	web.Post("/", CreateExpenseHandler(d))
	web.Post("/:id/delete", DeleteExpenseHandler(d))
}
