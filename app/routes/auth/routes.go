package auth

import (
	"github.com/dimasdaffa/fe-rembugwarga/app/guard"
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"
	"github.com/dimasdaffa/fe-rembugwarga/app/session"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, d *web.Deps) {
	app.Get("/login", ShowLoginPage(d))
	app.Post("/login", RateLimitLogin(), LoginAPI(d))
	app.Post("/logout", LogoutAPI(d))
}

func ShowLoginPage(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Already logged in
		if sess := d.Sessions.Read(c); sess.Authenticated() {
			return c.Redirect(sess.Role.LandingPath())
		}

		return c.Render("auth/login", web.Page(c, "Login", "login", fiber.Map{
			"Email": c.Query("email"),
		}), "")
	}
}

// AuthMiddleware admits any session that carries a token.
func AuthMiddleware(store *session.Store) fiber.Handler {
	return RoleMiddleware(store, "")
}

// RoleMiddleware runs the guard once per request and stores the session for
// the handlers. Nothing downstream runs unless the guard allows it.
func RoleMiddleware(store *session.Store, required models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := store.Read(c)
		decision := guard.Enforce(sess, required)

		switch decision.Outcome {
		case guard.Unauthenticated:
			return c.Redirect(decision.Target)
		case guard.Unauthorized:
			return web.RedirectError(c, decision.Target, decision.Notice)
		}

		c.Locals(web.SessionKey, sess)
		return c.Next()
	}
}
