// Package server assembles the Fiber app: view engine, middleware and every
// feature's routes.
package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/dimasdaffa/fe-rembugwarga/app/apiclient"
	"github.com/dimasdaffa/fe-rembugwarga/app/config"
	"github.com/dimasdaffa/fe-rembugwarga/app/format"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/admin"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/auth"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/dashboard"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/events"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/expenses"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/invoices"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/reports"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"
	"github.com/dimasdaffa/fe-rembugwarga/app/session"
	"github.com/dimasdaffa/fe-rembugwarga/app/templates"
	"github.com/dimasdaffa/fe-rembugwarga/app/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

const bodyLimit = 10 * 1024 * 1024

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	}

	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("404", web.Page(c, "Halaman Tidak Ditemukan", "", nil))
	case fiber.StatusForbidden:
		return c.Status(code).Render("error", web.Page(c, "Akses Ditolak", "", fiber.Map{
			"ErrorCode":    code,
			"ErrorTitle":   "Akses Ditolak",
			"ErrorMessage": "Permintaan Anda tidak dapat diproses. Muat ulang halaman lalu coba lagi.",
		}))
	case fiber.StatusInternalServerError:
		return c.Status(code).Render("500", web.Page(c, "Kesalahan Server", "", fiber.Map{
			"ErrorCode":    code,
			"ErrorTitle":   "Terjadi Kesalahan",
			"ErrorMessage": "Sedang terjadi gangguan teknis. Silakan coba beberapa saat lagi.",
			"ShowRetry":    true,
		}))
	default:
		return c.Status(code).Render("error", web.Page(c, "Kesalahan", "", fiber.Map{
			"ErrorCode":    code,
			"ErrorTitle":   "Terjadi Kesalahan",
			"ErrorMessage": err.Error(),
		}))
	}
}

// NewEngine builds the view engine over the embedded templates.
func NewEngine(cfg *config.Config) *html.Engine {
	engine := html.NewFileSystem(http.FS(templates.FS), ".html")
	for name, fn := range format.Funcs() {
		engine.AddFunc(name, fn)
	}
	engine.AddFunc("proofURL", func(path string) string {
		if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
			return path
		}
		return cfg.StorageBaseURL + "/" + strings.TrimLeft(path, "/")
	})
	return engine
}

// New wires the whole frontend from cfg.
func New(cfg *config.Config) *fiber.App {
	deps := &web.Deps{
		Config:    cfg,
		API:       apiclient.New(cfg.APIBaseURL, cfg.APITimeout),
		Sessions:  session.NewStore(cfg.Session),
		Mutations: view.NewMutations(),
	}

	app := fiber.New(fiber.Config{
		Views:        NewEngine(cfg),
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
		BodyLimit:    bodyLimit,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(requestContext(cfg.APITimeout))
	if cfg.CSRFEnabled {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:_csrf",
			CookieName:     "csrf_",
			CookieSameSite: "Lax",
			CookieSecure:   cfg.Session.CookieSecure,
			CookieHTTPOnly: true,
			ContextKey:     web.CSRFKey,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				log.Printf("CSRF check failed for %s %s: %v", c.Method(), c.Path(), err)
				return fiber.NewError(fiber.StatusForbidden, "Invalid CSRF token")
			},
		}))
	}

	// Static files
	app.Static("/static", "./static")

	events.SetupEventsRoutes(app)
	auth.SetupAuthRoutes(app, deps)
	dashboard.SetupDashboardRoutes(app, deps)
	invoices.SetupInvoicesRoutes(app, deps)
	reports.SetupReportsRoutes(app, deps)
	admin.SetupAdminRoutes(app, deps)
	expenses.SetupExpensesRoutes(app, deps)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}
