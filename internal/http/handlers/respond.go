package handlers

import (
	"errors"

	"bubblycrochet/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ok writes the success envelope every mutating endpoint shares:
// {"success": true, ...payload}.
func ok(c *fiber.Ctx, status int, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// fail writes the error envelope: {"message": "..."}.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// failErr maps service sentinels onto the 400/401/403/404 taxonomy; anything
// unrecognized bubbles to the app error handler as a 500.
func failErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrNotOwner):
		return fail(c, fiber.StatusForbidden, "Not authorized")
	case errors.Is(err, services.ErrBadCreds):
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrBadToken):
		return fail(c, fiber.StatusUnauthorized, "Not authorized")
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrAlreadyReviewed),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrNoAddress),
		errors.Is(err, services.ErrBadStatus),
		errors.Is(err, services.ErrBadTransition),
		errors.Is(err, services.ErrStaleOrder):
		return fail(c, fiber.StatusBadRequest, capitalize(err.Error()))
	}
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-32) + s[1:]
	}
	return s
}
