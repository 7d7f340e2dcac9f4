package dashboard

import (
	"context"
	"log"

	"github.com/dimasdaffa/fe-rembugwarga/app/apiclient"
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/dimasdaffa/fe-rembugwarga/app/routes/web"
	"github.com/dimasdaffa/fe-rembugwarga/app/view"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard handles the announcements page
func GetDashboard(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctrl := view.New(func(ctx context.Context) ([]models.Announcement, error) {
			return d.API.Announcements(ctx)
		})
		snap, done, err := web.Load(c, d, ctrl)
		if done {
			return err
		}

		return c.Render("dashboard/index", web.Page(c, "Dashboard", "dashboard", fiber.Map{
			"State":         snap.State.String(),
			"Announcements": snap.Data,
			"LoadError":     web.LoadFailed,
		}), web.DashboardLayout)
	}
}

// GetNotifications lists the user's notifications. A failed fetch shows an
// empty list.
func GetNotifications(d *web.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := web.CurrentSession(c)
		notifications, err := d.API.Notifications(c.UserContext(), sess.Token)
		if err != nil {
			if apiclient.IsUnauthorized(err) {
				return d.Expired(c)
			}
			log.Printf("Notifications unavailable, showing empty list: %v", err)
			notifications = nil
		}

		return c.Render("dashboard/notifications", web.Page(c, "Notifikasi", "notifications", fiber.Map{
			"Notifications": notifications,
		}), web.DashboardLayout)
	}
}
