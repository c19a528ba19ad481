package handlers

import (
	"strings"

	"bubblycrochet/internal/domain"
	applog "bubblycrochet/internal/log"
	"bubblycrochet/internal/services"

	"github.com/gofiber/fiber/v2"
)

// bearerToken pulls the JWT from the Authorization header or, failing that,
// from the token/adminToken cookies the login endpoints set.
func bearerToken(c *fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if t := c.Cookies("token"); t != "" {
		return t
	}
	return c.Cookies("adminToken")
}

// Protect resolves the caller to a user and stashes it in locals; 401 when
// the token is missing, expired, or points at a deleted/inactive account.
func Protect(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := bearerToken(c)
		if tok == "" {
			return fail(c, fiber.StatusUnauthorized, "Not authorized, no token")
		}
		u, err := auth.UserFromToken(tok)
		if err != nil {
			applog.Security(c, "auth.token.reject", nil)
			return fail(c, fiber.StatusUnauthorized, "Not authorized, token failed")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireAdmin must run after Protect.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := currentUser(c)
		if !u.IsAdmin() {
			applog.Security(c, "access.denied.admin", map[string]any{"user_id": userID(u)})
			return fail(c, fiber.StatusForbidden, "Not authorized as admin")
		}
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

func userID(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.ID
}
