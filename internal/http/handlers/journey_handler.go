package handlers

import (
	"bubblycrochet/internal/domain"
	applog "bubblycrochet/internal/log"
	"bubblycrochet/internal/services"
	"bubblycrochet/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type JourneyHandler struct {
	Journey *services.JourneyService
}

type journeyBody struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Category     string `json:"category"`
}

func (b journeyBody) validate() (domain.JourneyResource, string) {
	title, okT := validate.Text(b.Title, 200)
	desc, okD := validate.Text(b.Description, 500)
	switch {
	case !okT || title == "":
		return domain.JourneyResource{}, "Title is required (max 200 chars)"
	case !okD || desc == "":
		return domain.JourneyResource{}, "Description is required (max 500 chars)"
	case b.URL == "":
		return domain.JourneyResource{}, "URL is required"
	case b.ThumbnailURL == "":
		return domain.JourneyResource{}, "Thumbnail URL is required"
	case !validate.OneOf(b.Category, domain.JourneyCategories):
		return domain.JourneyResource{}, "Unknown category"
	}
	return domain.JourneyResource{
		Title: title, Description: desc, URL: b.URL,
		ThumbnailURL: b.ThumbnailURL, Category: b.Category,
	}, ""
}

// GET /api/journey?category=
func (h *JourneyHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")
	if category != "" && !validate.OneOf(category, domain.JourneyCategories) {
		return fail(c, fiber.StatusBadRequest, "Unknown category")
	}
	resources, err := h.Journey.List(category)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, fiber.Map{"count": len(resources), "data": resources})
}

// GET /api/journey/grouped. Served from the 10 minute cache when warm.
func (h *JourneyHandler) Grouped(c *fiber.Ctx) error {
	grouped, cached, err := h.Journey.Grouped()
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, fiber.Map{"data": grouped, "cached": cached})
}

// GET /api/journey/:id
func (h *JourneyHandler) Get(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Journey resource not found")
	}
	j, err := h.Journey.Get(id)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"data": j})
}

// POST /api/journey (admin)
func (h *JourneyHandler) Create(c *fiber.Ctx) error {
	var body journeyBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	j, msg := body.validate()
	if msg != "" {
		return fail(c, fiber.StatusBadRequest, msg)
	}
	created, err := h.Journey.Create(j)
	if err != nil {
		return failErr(c, err)
	}
	applog.Audit(c, "journey.create", map[string]any{"resource_id": created.ID})
	return ok(c, fiber.StatusCreated, fiber.Map{"data": created})
}

// PUT /api/journey/:id (admin)
func (h *JourneyHandler) Update(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Journey resource not found")
	}
	var body journeyBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	j, msg := body.validate()
	if msg != "" {
		return fail(c, fiber.StatusBadRequest, msg)
	}
	j.ID = id
	updated, err := h.Journey.Update(j)
	if err != nil {
		return failErr(c, err)
	}
	applog.Audit(c, "journey.update", map[string]any{"resource_id": id})
	return ok(c, fiber.StatusOK, fiber.Map{"data": updated})
}

// DELETE /api/journey/:id (admin)
func (h *JourneyHandler) Delete(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Journey resource not found")
	}
	if err := h.Journey.Delete(id); err != nil {
		return failErr(c, err)
	}
	applog.Audit(c, "journey.delete", map[string]any{"resource_id": id})
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Journey resource deleted"})
}
