package auth

import (
	"time"

	"github.com/dimasdaffa/fe-rembugwarga/app/guard"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const tooManyAttempts = "Terlalu banyak percobaan login. Coba lagi dalam satu menit."

// RateLimitLogin limits login attempts to 10 per minute per IP.
func RateLimitLogin() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return web.RedirectError(c, guard.LoginPath, tooManyAttempts)
		},
	})
}
