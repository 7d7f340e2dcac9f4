// Package web carries what every page handler shares: explicit dependencies,
// the common template data and the flash redirects.
package web

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/dimasdaffa/fe-rembugwarga/app/apiclient"
	"github.com/dimasdaffa/fe-rembugwarga/app/config"
	"github.com/dimasdaffa/fe-rembugwarga/app/guard"
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/dimasdaffa/fe-rembugwarga/app/session"
	"github.com/dimasdaffa/fe-rembugwarga/app/view"
	"github.com/gofiber/fiber/v2"
)

const (
	DashboardLayout = "layouts/dashboard"

	// locals keys
	SessionKey = "session"
	CSRFKey    = "csrf"
)

const (
	LoadFailed    = "Gagal mengambil data."
	ReportFailed  = "Gagal memuat laporan."
	LogbookFailed = "Gagal memuat logbook."
	ExpiredNotice = "Sesi Anda telah berakhir. Silakan login kembali."
)

// Deps is handed to every feature's route setup.
type Deps struct {
	Config    *config.Config
	API       *apiclient.Client
	Sessions  *session.Store
	Mutations *view.Mutations
}

// CurrentSession returns the session stored by the auth middleware.
func CurrentSession(c *fiber.Ctx) session.Session {
	if sess, ok := c.Locals(SessionKey).(session.Session); ok {
		return sess
	}
	return session.Session{}
}

// Page builds the template data every page needs and merges extra into it.
func Page(c *fiber.Ctx, title, current string, extra fiber.Map) fiber.Map {
	sess := CurrentSession(c)
	data := fiber.Map{
		"Title":        title + " - Rembug Warga",
		"CurrentPage":  current,
		"Role":         string(sess.Role),
		"IsPengurus":   sess.Role == models.RolePengurus,
		"FlashMessage": c.Query("message"),
		"FlashError":   c.Query("error"),
		"CSRF":         c.Locals(CSRFKey),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// With appends a flash query parameter to path.
func With(path, key, text string) string {
	if text == "" {
		return path
	}
	u, err := url.Parse(path)
	if err != nil {
		return path
	}
	q := u.Query()
	q.Set(key, text)
	u.RawQuery = q.Encode()
	return u.String()
}

// RedirectMessage sends the browser back to path with a success flash.
func RedirectMessage(c *fiber.Ctx, path, text string) error {
	return c.Redirect(With(path, "message", text), fiber.StatusSeeOther)
}

// RedirectError sends the browser back to path with an error flash.
func RedirectError(c *fiber.Ctx, path, text string) error {
	return c.Redirect(With(path, "error", text), fiber.StatusSeeOther)
}

// Expired clears the session after the API rejected the token.
func (d *Deps) Expired(c *fiber.Ctx) error {
	d.Sessions.Clear(c)
	return RedirectError(c, guard.LoginPath, ExpiredNotice)
}

// Dropped ends a request whose load result was discarded as stale.
func Dropped(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusRequestTimeout)
}

// MutationKey identifies one action on one resource for one session.
func MutationKey(sess session.Session, action string, id interface{}) string {
	return fmt.Sprintf("%s:%s:%v", sess.Token, action, id)
}

// Load runs ctrl for this request. done reports that the response is already
// decided: the result went stale or the API rejected the session.
func Load[T any](c *fiber.Ctx, d *Deps, ctrl *view.Controller[T]) (snap view.Snapshot[T], done bool, err error) {
	snap = ctrl.Load(c.UserContext())
	switch {
	case errors.Is(snap.Err, view.ErrStale):
		return snap, true, Dropped(c)
	case apiclient.IsUnauthorized(snap.Err):
		return snap, true, d.Expired(c)
	}
	return snap, false, nil
}

// PeriodForm fills the year/month picker, defaulting to the current month.
func PeriodForm(c *fiber.Ctx, action, heading, button string, extra fiber.Map) fiber.Map {
	now := time.Now()
	year, month := c.Query("year"), c.Query("month")
	if year == "" {
		year = strconv.Itoa(now.Year())
	}
	if month == "" {
		month = fmt.Sprintf("%02d", int(now.Month()))
	}
	if extra == nil {
		extra = fiber.Map{}
	}
	extra["Year"] = year
	extra["Month"] = month
	extra["PeriodAction"] = action
	extra["PeriodHeading"] = heading
	extra["PeriodButton"] = button
	return extra
}
