package handlers

import (
	applog "bubblycrochet/internal/log"
	"bubblycrochet/internal/services"
	"bubblycrochet/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

type reviewBody struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// GET /api/reviews/product/:productId
func (h *ReviewHandler) ListByProduct(c *fiber.Ctx) error {
	pid, okID := validate.ID(c.Params("productId"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Product not found")
	}
	reviews, err := h.Reviews.ListByProduct(pid)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, fiber.Map{"count": len(reviews), "reviews": reviews})
}

// POST /api/reviews
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var body reviewBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	pid, okID := validate.ID(body.ProductID)
	comment, okC := validate.Text(body.Comment, 500)
	if !okID || !validate.Rating(body.Rating) || !okC || comment == "" {
		return fail(c, fiber.StatusBadRequest, "Rating must be 1-5 and comment is required (max 500 chars)")
	}

	rev, err := h.Reviews.Create(currentUser(c), pid, body.Rating, comment)
	if err != nil {
		return failErr(c, err)
	}
	applog.Audit(c, "review.create", map[string]any{"review_id": rev.ID, "product_id": pid})
	return ok(c, fiber.StatusCreated, fiber.Map{"review": rev})
}

// PUT /api/reviews/:id. Author only.
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Review not found")
	}
	var body reviewBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	comment, okC := validate.Text(body.Comment, 500)
	if !validate.Rating(body.Rating) || !okC || comment == "" {
		return fail(c, fiber.StatusBadRequest, "Rating must be 1-5 and comment is required (max 500 chars)")
	}

	rev, err := h.Reviews.Update(currentUser(c), id, body.Rating, comment)
	if err != nil {
		return failErr(c, err)
	}
	applog.Audit(c, "review.update", map[string]any{"review_id": id})
	return ok(c, fiber.StatusOK, fiber.Map{"review": rev})
}

// DELETE /api/reviews/:id. Author or admin.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Review not found")
	}
	if err := h.Reviews.Delete(currentUser(c), id); err != nil {
		return failErr(c, err)
	}
	applog.Audit(c, "review.delete", map[string]any{"review_id": id})
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Review deleted"})
}
