package handlers

import (
	"time"

	"bubblycrochet/internal/domain"
	applog "bubblycrochet/internal/log"
	"bubblycrochet/internal/services"
	"bubblycrochet/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth         *services.AuthService
	CookieSecure bool
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, name, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.CookieSecure,
		Expires:  time.Now().Add(h.Auth.TTL),
	})
}

func clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Address  string `json:"address"`
		Phone    string `json:"phone"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	email, okE := validate.Email(req.Email)
	name, okN := validate.Name(req.Name)
	if !okE || !okN || !validate.Password(req.Password) {
		applog.Security(c, "auth.register.fail", map[string]any{"reason": "validation"})
		return fail(c, fiber.StatusBadRequest, "Please provide a valid email, password (min 6 chars) and name")
	}

	u, token, err := h.Auth.Register(services.RegisterInput{
		Email: email, Password: req.Password, Name: name,
		Address: req.Address, Phone: req.Phone,
	})
	if err != nil {
		return failErr(c, err)
	}
	h.setAuthCookie(c, "token", token)
	applog.Audit(c, "auth.register", map[string]any{"user_id": u.ID})
	return ok(c, fiber.StatusCreated, fiber.Map{"token": token, "user": u})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.login(c, "token", h.Auth.Login)
}

// POST /api/auth/admin/login
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	return h.login(c, "adminToken", h.Auth.AdminLogin)
}

func (h *AuthHandler) login(c *fiber.Ctx, cookieName string, fn func(email, password string) (*domain.User, string, error)) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	email, okE := validate.Email(req.Email)
	if !okE || req.Password == "" {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	u, token, err := fn(email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return failErr(c, err)
	}
	h.setAuthCookie(c, cookieName, token)
	applog.Audit(c, "auth.login.success", map[string]any{"user_id": u.ID})
	return ok(c, fiber.StatusOK, fiber.Map{"token": token, "user": u})
}

// POST /api/auth/logout. Tokens are not revocable; this only clears cookies.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearCookie(c, "token")
	clearCookie(c, "adminToken")
	applog.Audit(c, "auth.logout", nil)
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Logged out"})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, fiber.Map{"user": currentUser(c)})
}

// PUT /api/auth/me
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		Name        string   `json:"name"`
		Avatar      string   `json:"avatar"`
		Address     string   `json:"address"`
		Country     string   `json:"country"`
		CountryCode string   `json:"countryCode"`
		Phone       string   `json:"phone"`
		Bio         string   `json:"bio"`
		Interests   []string `json:"interests"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	name, okN := validate.Name(req.Name)
	bio, okB := validate.Text(req.Bio, 500)
	if !okN || !okB {
		return fail(c, fiber.StatusBadRequest, "Invalid profile fields")
	}

	u, err := h.Auth.UpdateProfile(currentUser(c), services.ProfileInput{
		Name: name, Avatar: req.Avatar, Address: req.Address,
		Country: req.Country, CountryCode: req.CountryCode,
		Phone: req.Phone, Bio: bio, Interests: req.Interests,
	})
	if err != nil {
		return failErr(c, err)
	}
	applog.Audit(c, "auth.profile.update", map[string]any{"user_id": u.ID})
	return ok(c, fiber.StatusOK, fiber.Map{"user": u})
}

// PUT /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !validate.Password(req.NewPassword) {
		return fail(c, fiber.StatusBadRequest, "New password must be at least 6 characters")
	}
	if err := h.Auth.ChangePassword(currentUser(c), req.CurrentPassword, req.NewPassword); err != nil {
		applog.Security(c, "auth.password.change.fail", map[string]any{"user_id": userID(currentUser(c))})
		return failErr(c, err)
	}
	applog.Audit(c, "auth.password.change", map[string]any{"user_id": userID(currentUser(c))})
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Password updated"})
}

// DELETE /api/auth/account. Self-service; admins cannot delete themselves
// through the API.
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	u := currentUser(c)
	if u.IsAdmin() {
		return fail(c, fiber.StatusForbidden, "Admin accounts cannot be deleted")
	}
	if err := h.Auth.DeleteAccount(u); err != nil {
		return failErr(c, err)
	}
	clearCookie(c, "token")
	applog.Audit(c, "auth.account.delete", map[string]any{"user_id": u.ID})
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Account deleted"})
}

// POST /api/auth/reset-password-request. Stub: no mail is ever sent, the
// response is success regardless so addresses cannot be probed.
func (h *AuthHandler) ResetPasswordRequest(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if _, okE := validate.Email(req.Email); !okE {
		return fail(c, fiber.StatusBadRequest, "Please provide a valid email")
	}
	applog.Audit(c, "auth.password.reset.request", map[string]any{"email": req.Email})
	return ok(c, fiber.StatusOK, fiber.Map{"message": "If the account exists, a reset link will be sent"})
}
