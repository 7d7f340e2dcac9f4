package events

import (
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"

	"github.com/gofiber/fiber/v2"
)

// SetupEventsRoutes sets up the public pages
func SetupEventsRoutes(app *fiber.App) {
	app.Get("/", renderHomePage)
	app.Get("/events", renderEventsPage)
	app.Get("/gallery", renderGalleryPage)
	app.Get("/about", renderAboutPage)
}

func renderHomePage(c *fiber.Ctx) error {
	return c.Render("home/index", web.Page(c, "Beranda", "home", fiber.Map{
		"Events":  UpcomingEvents(),
		"Gallery": GalleryPreview(6),
	}))
}

func renderEventsPage(c *fiber.Ctx) error {
	return c.Render("home/events", web.Page(c, "Kegiatan", "events", fiber.Map{
		"Events": UpcomingEvents(),
	}))
}

func renderGalleryPage(c *fiber.Ctx) error {
	return c.Render("home/gallery", web.Page(c, "Galeri", "gallery", fiber.Map{
		"Gallery": GalleryPreview(0),
	}))
}

func renderAboutPage(c *fiber.Ctx) error {
	return c.Render("home/about", web.Page(c, "Tentang Kami", "about", nil))
}
