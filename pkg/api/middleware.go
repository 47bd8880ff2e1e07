package api

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
)

const requestIDHeader = "X-Request-ID"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// requestID returns middleware that assigns each request a correlation ID,
// honoring an inbound X-Request-ID when present.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(requestIDHeader, id)
			return next(c)
		}
	}
}

// requestLogger returns middleware that logs one line per request.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)

			id := c.Response().Header().Get(requestIDHeader)
			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", id,
			}
			if err != nil {
				slog.Warn("Request failed", append(attrs, "error", err)...)
			} else {
				slog.Info("Request handled", attrs...)
			}
			return err
		}
	}
}
