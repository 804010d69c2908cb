package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/api/metrics"
	"github.com/taskhive/taskhive/internal/ratelimit"
)

// RateLimit guards an endpoint with the given fixed-window limiter, keyed by
// client IP. Rejected requests get 429 with a Retry-After hint before any
// credential check or store access runs. A nil limiter disables the guard.
func RateLimit(limiter *ratelimit.Limiter, endpoint string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}
			if !limiter.Allow(c.RealIP()) {
				metrics.RateLimitedTotal.WithLabelValues(endpoint).Inc()
				retryAfter := int(limiter.Window() / time.Second)
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(retryAfter))
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}
