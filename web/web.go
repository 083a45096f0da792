package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/sirupsen/logrus"

	"marketpro/store"
)

//go:embed views
var viewsFS embed.FS

// NewEngine builds the template engine over the embedded views. Pass
// the result as fiber.Config.Views with ViewsLayout "layouts/main".
func NewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		// The views directory is compiled in; this cannot happen at runtime.
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// Handler serves the server-rendered pages. Pages read the same store
// the JSON API writes, and always act as the seeded demo user.
type Handler struct {
	Store         *store.Store
	Logger        *logrus.Logger
	notifications *notificationCenter
}

// demoUserID is the account every page renders for. There is no login
// session on the page side; authentication stays a non-goal.
const demoUserID = 1

func NewHandler(s *store.Store, logger *logrus.Logger) *Handler {
	return &Handler{
		Store:         s,
		Logger:        logger,
		notifications: newNotificationCenter(),
	}
}

// SetupRoutes registers every page and the notification endpoints.
func SetupRoutes(app *fiber.App, s *store.Store, logger *logrus.Logger) {
	h := NewHandler(s, logger)

	app.Get("/", h.Home)
	app.Get("/dashboard", h.Dashboard)
	app.Get("/campaigns", h.Campaigns)
	app.Get("/campaigns/new", h.CampaignWizard)
	app.Post("/campaigns/new", h.CampaignWizardSubmit)
	app.Get("/contacts", h.Contacts)
	app.Get("/analytics", h.Analytics)
	app.Get("/pricing", h.Pricing)

	app.Post("/notifications/read-all", h.MarkAllNotificationsRead)
	app.Post("/notifications/:id/read", h.MarkNotificationRead)
	app.Post("/notifications/:id/dismiss", h.DismissNotification)

	logger.Info("web routes initialized")
}

// render wraps c.Render, attaching the data every page layout needs:
// the active nav item and the session's notification panel state.
func (h *Handler) render(c *fiber.Ctx, name, active string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	notices := h.notifications.forSession(h.sessionID(c))
	data["Active"] = active
	data["Notifications"] = notices
	data["UnreadCount"] = unreadCount(notices)
	return c.Render(name, data)
}

func (h *Handler) renderError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("error", fiber.Map{
		"Active":      "",
		"UnreadCount": 0,
		"Status":      status,
		"Message":     message,
	})
}
