package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	JWTSecret      string
	JWTTTL         time.Duration
	StaticDir      string
	LogFile        string
	AllowedOrigins string
	CookieSecure   bool
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:           getenv("PORT", "5000"),
		DBDSN:          getenv("DB_DSN", "bubblycrochet.db"),
		JWTSecret:      getenv("JWT_SECRET", "fallback_secret"),
		JWTTTL:         7 * 24 * time.Hour,
		StaticDir:      getenv("STATIC_DIR", "./web/dist"),
		LogFile:        os.Getenv("LOG_FILE"),
		AllowedOrigins: getenv("ALLOWED_ORIGINS", "http://localhost:3000"),
		CookieSecure:   os.Getenv("COOKIE_SECURE") == "true",
	}
	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			log.Printf("[config] bad JWT_TTL %q, keeping 168h", ttl)
		} else {
			cfg.JWTTTL = d
		}
	}
	log.Printf("[config] PORT=%s DB_DSN=%s STATIC_DIR=%s", cfg.Port, cfg.DBDSN, cfg.StaticDir)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
