package auth

import (
	"log"
	"strings"

	"github.com/dimasdaffa/fe-rembugwarga/app/apiclient"
	"github.com/dimasdaffa/fe-rembugwarga/app/guard"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"

	"github.com/gofiber/fiber/v2"
)

const (
	loginFailed     = "Email atau password salah."
	loginIncomplete = "Login gagal: respons server tidak lengkap."
	loginMissing    = "Email dan password wajib diisi."
)

func LoginAPI(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := strings.TrimSpace(c.FormValue("email"))
		password := c.FormValue("password")
		back := web.With(guard.LoginPath, "email", email)

		if email == "" || password == "" {
			return web.RedirectError(c, back, loginMissing)
		}

		resp, err := d.API.Login(c.UserContext(), email, password)
		if err != nil {
			return web.RedirectError(c, back, apiclient.MessageOr(err, loginFailed))
		}

		token, role := resp.SessionToken(), resp.SessionRole()
		if token == "" || role == "" {
			log.Printf("Login response for %s missing token or role", email)
			return web.RedirectError(c, back, loginIncomplete)
		}

		if err := d.Sessions.Save(c, token, role); err != nil {
			log.Printf("Failed to save session: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save session")
		}

		return c.Redirect(role.LandingPath(), fiber.StatusSeeOther)
	}
}

// LogoutAPI tells the API to revoke the token, then clears the cookies
// whatever the API answered.
func LogoutAPI(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess := d.Sessions.Read(c); sess.Authenticated() {
			if err := d.API.Logout(c.UserContext(), sess.Token); err != nil {
				log.Printf("Logout request failed: %v", err)
			}
		}
		d.Sessions.Clear(c)
		return c.Redirect(guard.LoginPath, fiber.StatusSeeOther)
	}
}
