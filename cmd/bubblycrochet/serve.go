package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"

	"bubblycrochet/internal/config"
	"bubblycrochet/internal/http/handlers"
	applog "bubblycrochet/internal/log"
	"bubblycrochet/internal/repos"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg := config.Load()
	applog.Init(cfg.LogFile)

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, okF := err.(*fiber.Error); okF {
				return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
			}
			applog.Error(c, "server.error", err, nil)
			body := fiber.Map{"message": "Internal server error"}
			if os.Getenv("APP_ENV") != "production" {
				body["message"] = err.Error()
			}
			return c.Status(fiber.StatusInternalServerError).JSON(body)
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(db, cfg)

	// Login endpoints get their own tighter throttle
	loginLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: 10 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|login"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many attempts, please try again later"})
		},
	})
	app.Use("/api/auth/login", loginLimiter)
	app.Use("/api/auth/admin/login", loginLimiter)

	deps.Register(app)

	// The SPA ships as a prebuilt static bundle
	if st, err := os.Stat(cfg.StaticDir); err == nil && st.IsDir() {
		app.Static("/", cfg.StaticDir)
	}

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Route not found"})
	})

	return app.Listen(":" + cfg.Port)
}
