package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// requestContext bounds each request's API work. The context ends at the
// timeout, or earlier when the server shuts down and fasthttp closes the
// request's Done channel.
func requestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
