package handlers

import (
	"bubblycrochet/internal/domain"
	applog "bubblycrochet/internal/log"
	"bubblycrochet/internal/repos"
	"bubblycrochet/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	Notifications *repos.NotificationRepo
}

// feedFor maps the caller to their notification feed: admins share the
// 'admin' feed, everyone else reads their own.
func feedFor(u *domain.User) string {
	if u.IsAdmin() {
		return domain.AdminFeed
	}
	return u.ID
}

// GET /api/notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifs, err := h.Notifications.ListByRecipient(feedFor(currentUser(c)))
	if err != nil {
		return err
	}
	unread := 0
	for _, n := range notifs {
		if !n.Read {
			unread++
		}
	}
	return ok(c, fiber.StatusOK, fiber.Map{"count": len(notifs), "unread": unread, "notifications": notifs})
}

// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Notification not found")
	}
	done, err := h.Notifications.MarkRead(id, feedFor(currentUser(c)))
	if err != nil {
		return err
	}
	if !done {
		return fail(c, fiber.StatusNotFound, "Notification not found")
	}
	applog.Info(c, "notification.read", map[string]any{"notification_id": id})
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Marked as read"})
}
