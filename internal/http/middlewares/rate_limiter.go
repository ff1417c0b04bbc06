package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	apperrors "task-management-api.com/task-management-api/internal/errors"
	"task-management-api.com/task-management-api/internal/ratelimit"
)

// RateLimiter rejects clients that exhausted their window with 429. When the
// limiter itself fails the request is let through.
func RateLimiter(limiter ratelimit.Limiter, logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				logger.WarnContext(c.Request().Context(), "rate limiter unavailable", "client", key, "error", err)
				return next(c)
			}

			if !allowed {
				return echo.NewHTTPError(apperrors.ErrRateLimited.StatusCode, apperrors.ErrRateLimited.Message)
			}

			return next(c)
		}
	}
}
