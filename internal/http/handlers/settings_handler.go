package handlers

import (
	"bubblycrochet/internal/domain"
	applog "bubblycrochet/internal/log"
	"bubblycrochet/internal/repos"
	"bubblycrochet/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	Settings *repos.SettingsRepo
}

// GET /api/settings. Lazily creates the defaults row on first read.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	s, err := h.Settings.Get()
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, fiber.Map{"settings": s})
}

// PUT /api/settings (admin). Full replace of the singleton.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var s domain.Settings
	if err := c.BodyParser(&s); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if s.StoreName == "" || s.OwnerName == "" {
		return fail(c, fiber.StatusBadRequest, "Store name and owner name are required")
	}
	if _, okE := validate.Email(s.ContactEmail); !okE {
		return fail(c, fiber.StatusBadRequest, "Please provide a valid contact email")
	}

	if err := h.Settings.Upsert(&s); err != nil {
		return err
	}
	saved, err := h.Settings.Get()
	if err != nil {
		return err
	}
	applog.Audit(c, "settings.update", nil)
	return ok(c, fiber.StatusOK, fiber.Map{"settings": saved})
}
