package log

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init points the logger at stdout plus an optional log file.
func Init(logFile string) {
	zerolog.TimeFieldFormat = time.RFC3339
	var w io.Writer = os.Stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			logger.Warn().Err(err).Str("file", logFile).Msg("could not open log file")
		} else {
			w = io.MultiWriter(os.Stdout, f)
		}
	}
	logger = zerolog.New(w).With().Timestamp().Logger()
}

func event(e *zerolog.Event, c *fiber.Ctx, action string, fields map[string]any) {
	if c != nil {
		e = e.Str("ip", c.IP()).Str("method", c.Method()).Str("path", c.Path())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e = e.Str("req_id", rid)
		}
	}
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	e.Msg(action)
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	event(logger.Info(), c, action, fields)
}

// Audit records state-changing actions (logins, order placement, admin edits).
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	event(logger.Info().Str("kind", "audit"), c, action, fields)
}

// Security records denied access and validation failures worth watching.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	event(logger.Warn().Str("kind", "security"), c, action, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	event(logger.Error().Err(err), c, action, fields)
}
