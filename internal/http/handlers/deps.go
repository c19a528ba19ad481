package handlers

import (
	"time"

	"bubblycrochet/internal/config"
	"bubblycrochet/internal/repos"
	"bubblycrochet/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Auth *services.AuthService

	AuthHandler         *AuthHandler
	ProductHandler      *ProductHandler
	OrderHandler        *OrderHandler
	ReviewHandler       *ReviewHandler
	SettingsHandler     *SettingsHandler
	JourneyHandler      *JourneyHandler
	NotificationHandler *NotificationHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	reviewRepo := repos.NewReviewRepo(db)
	settingsRepo := repos.NewSettingsRepo(db)
	journeyRepo := repos.NewJourneyRepo(db)
	notifRepo := repos.NewNotificationRepo(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(prodRepo)
	orderSvc := services.NewOrderService(orderRepo, prodRepo)
	reviewSvc := services.NewReviewService(reviewRepo)
	journeySvc := services.NewJourneyService(journeyRepo, services.NewJourneyCache())

	return &Deps{
		Auth:                authSvc,
		AuthHandler:         &AuthHandler{Auth: authSvc, CookieSecure: cfg.CookieSecure},
		ProductHandler:      &ProductHandler{Catalog: catalogSvc},
		OrderHandler:        &OrderHandler{Orders: orderSvc},
		ReviewHandler:       &ReviewHandler{Reviews: reviewSvc},
		SettingsHandler:     &SettingsHandler{Settings: settingsRepo},
		JourneyHandler:      &JourneyHandler{Journey: journeySvc},
		NotificationHandler: &NotificationHandler{Notifications: notifRepo},
	}
}

// Register wires every /api route onto the app. Kept here so the test suite
// can stand up the exact production routing.
func (d *Deps) Register(app *fiber.App) {
	protect := Protect(d.Auth)
	admin := RequireAdmin()

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", d.AuthHandler.Register)
	auth.Post("/login", d.AuthHandler.Login)
	auth.Post("/admin/login", d.AuthHandler.AdminLogin)
	auth.Post("/logout", d.AuthHandler.Logout)
	auth.Get("/me", protect, d.AuthHandler.Me)
	auth.Put("/me", protect, d.AuthHandler.UpdateProfile)
	auth.Put("/change-password", protect, d.AuthHandler.ChangePassword)
	auth.Delete("/account", protect, d.AuthHandler.DeleteAccount)
	auth.Post("/reset-password-request", d.AuthHandler.ResetPasswordRequest)

	products := api.Group("/products")
	products.Get("/", d.ProductHandler.List)
	products.Get("/:id", d.ProductHandler.Get)
	products.Post("/", protect, admin, d.ProductHandler.Create)
	products.Put("/:id", protect, admin, d.ProductHandler.Update)
	products.Delete("/:id", protect, admin, d.ProductHandler.Delete)

	orders := api.Group("/orders", protect)
	orders.Post("/", d.OrderHandler.Place)
	orders.Get("/my-orders", d.OrderHandler.MyOrders)
	orders.Get("/", admin, d.OrderHandler.ListAll)
	orders.Get("/:id", d.OrderHandler.Get)
	orders.Put("/:id/status", admin, d.OrderHandler.UpdateStatus)

	reviews := api.Group("/reviews")
	reviews.Get("/product/:productId", d.ReviewHandler.ListByProduct)
	reviews.Post("/", protect, d.ReviewHandler.Create)
	reviews.Put("/:id", protect, d.ReviewHandler.Update)
	reviews.Delete("/:id", protect, d.ReviewHandler.Delete)

	settings := api.Group("/settings")
	settings.Get("/", d.SettingsHandler.Get)
	settings.Put("/", protect, admin, d.SettingsHandler.Update)

	journey := api.Group("/journey")
	journey.Get("/", d.JourneyHandler.List)
	journey.Get("/grouped", d.JourneyHandler.Grouped)
	journey.Get("/:id", d.JourneyHandler.Get)
	journey.Post("/", protect, admin, d.JourneyHandler.Create)
	journey.Put("/:id", protect, admin, d.JourneyHandler.Update)
	journey.Delete("/:id", protect, admin, d.JourneyHandler.Delete)

	notifications := api.Group("/notifications", protect)
	notifications.Get("/", d.NotificationHandler.List)
	notifications.Put("/:id/read", d.NotificationHandler.MarkRead)

	api.Get("/health", func(c *fiber.Ctx) error {
		return ok(c, fiber.StatusOK, fiber.Map{
			"message":   "Bubbly Crochet API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
