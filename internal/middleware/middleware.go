package middleware

import (
	"time"

	"recipe-management/internal/utils/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestLogger() fiber.Handler
	}

	middleware struct {
		log          *logger.Logger
		allowOrigins string
	}
)

func NewMiddleware(log *logger.Logger, allowOrigins string) Middleware {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return &middleware{
		log:          log.With("component", "http"),
		allowOrigins: allowOrigins,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

// RequestLogger writes one structured line per request once the handler chain returns.
func (m *middleware) RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		fields := []interface{}{
			"method", c.Method(),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			fields = append(fields, "error", err)
		}

		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			m.log.Error("HTTP request", fields...)
		case status >= fiber.StatusBadRequest:
			m.log.Warn("HTTP request", fields...)
		default:
			m.log.Info("HTTP request", fields...)
		}
		return err
	}
}
