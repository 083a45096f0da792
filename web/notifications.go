package web

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Notification is one notice in the panel. The list is fixed demo
// content; nothing pushes new notices from the server side.
type Notification struct {
	ID      int
	Type    string // success, warning, info, alert
	Title   string
	Message string
	Age     string
	Read    bool
}

func seedNotifications() []Notification {
	return []Notification{
		{1, "success", "Campaign Performance Alert", "Your \"Summer Sale\" campaign exceeded engagement targets by 25%", "30 minutes ago", false},
		{2, "warning", "Budget Alert", "Instagram campaign has used 80% of allocated budget", "2 hours ago", false},
		{3, "info", "New Feature Available", "Advanced audience segmentation is now available for WhatsApp campaigns", "4 hours ago", true},
		{4, "alert", "Campaign Approval Required", "Facebook campaign \"Holiday Promo\" requires manual approval", "6 hours ago", false},
		{5, "success", "Integration Complete", "Telegram Bot API successfully connected and configured", "8 hours ago", true},
	}
}

// notificationCenter keeps per-session panel state in memory. State
// is as volatile as the rest of the system and expires with the
// session cookie.
type notificationCenter struct {
	mu       sync.Mutex
	sessions map[string]sessionNotices
}

type sessionNotices struct {
	notices  []Notification
	lastSeen time.Time
}

const sessionTTL = 24 * time.Hour

func newNotificationCenter() *notificationCenter {
	return &notificationCenter{sessions: make(map[string]sessionNotices)}
}

func (nc *notificationCenter) forSession(id string) []Notification {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	nc.expireLocked()
	entry, ok := nc.sessions[id]
	if !ok {
		entry = sessionNotices{notices: seedNotifications()}
	}
	entry.lastSeen = time.Now()
	nc.sessions[id] = entry

	out := make([]Notification, len(entry.notices))
	copy(out, entry.notices)
	return out
}

func (nc *notificationCenter) markRead(id string, noticeID int) {
	nc.mutate(id, func(notices []Notification) []Notification {
		for i := range notices {
			if notices[i].ID == noticeID {
				notices[i].Read = true
			}
		}
		return notices
	})
}

func (nc *notificationCenter) markAllRead(id string) {
	nc.mutate(id, func(notices []Notification) []Notification {
		for i := range notices {
			notices[i].Read = true
		}
		return notices
	})
}

func (nc *notificationCenter) dismiss(id string, noticeID int) {
	nc.mutate(id, func(notices []Notification) []Notification {
		out := notices[:0]
		for _, n := range notices {
			if n.ID != noticeID {
				out = append(out, n)
			}
		}
		return out
	})
}

func (nc *notificationCenter) mutate(id string, fn func([]Notification) []Notification) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	entry, ok := nc.sessions[id]
	if !ok {
		entry = sessionNotices{notices: seedNotifications()}
	}
	entry.notices = fn(entry.notices)
	entry.lastSeen = time.Now()
	nc.sessions[id] = entry
}

// expireLocked drops sessions idle past the TTL. Called with the lock
// held.
func (nc *notificationCenter) expireLocked() {
	cutoff := time.Now().Add(-sessionTTL)
	for id, entry := range nc.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(nc.sessions, id)
		}
	}
}

func unreadCount(notices []Notification) int {
	count := 0
	for _, n := range notices {
		if !n.Read {
			count++
		}
	}
	return count
}

const sessionCookie = "marketpro_session"

// sessionID reads the session cookie, minting one on first contact.
func (h *Handler) sessionID(c *fiber.Ctx) string {
	if id := c.Cookies(sessionCookie); id != "" {
		return id
	}
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return id
}

// MarkNotificationRead flips one notice to read and returns to the
// referring page.
func (h *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.renderError(c, fiber.StatusBadRequest, "Invalid notification ID")
	}
	h.notifications.markRead(h.sessionID(c), id)
	return redirectBack(c)
}

// MarkAllNotificationsRead flips every notice to read.
func (h *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	h.notifications.markAllRead(h.sessionID(c))
	return redirectBack(c)
}

// DismissNotification removes one notice from the session's panel.
func (h *Handler) DismissNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.renderError(c, fiber.StatusBadRequest, "Invalid notification ID")
	}
	h.notifications.dismiss(h.sessionID(c), id)
	return redirectBack(c)
}

func redirectBack(c *fiber.Ctx) error {
	ref := c.Get("Referer")
	if ref == "" {
		ref = "/dashboard"
	}
	return c.Redirect(ref, fiber.StatusSeeOther)
}
