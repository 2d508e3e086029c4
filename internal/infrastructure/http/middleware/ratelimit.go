package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "github.com/middlegroundapp/middleground/errors"
	"github.com/middlegroundapp/middleground/internal/infrastructure/cache"
)

// RateLimit returns an echo middleware that allows at most max requests per
// client IP within the given window. Counters live in the in-memory store,
// which is adequate for a single-instance deployment.
func RateLimit(store *cache.MemoryStore, max int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if max <= 0 {
				return next(c)
			}

			key := "ratelimit:" + c.RealIP()
			if store.Incr(key, window) > max {
				appErr := apperrors.ErrTooManyRequests("Too many meetings created, try again later")
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":   appErr.Code,
					"message": appErr.Message,
				})
			}
			return next(c)
		}
	}
}
