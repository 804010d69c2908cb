package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/api/metrics"
	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

// Context keys set by Authenticate and read by handlers and RBAC middleware.
const (
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// Authenticate validates the bearer token and injects the caller's identity
// into the request context. Every token failure maps to the same 401 response
// so clients cannot distinguish expired from tampered tokens.
func Authenticate(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthenticated(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthenticated(c)
			}

			identity, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues(validationResult(err)).Inc()
				return unauthenticated(c)
			}
			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()

			c.Set(ContextKeyUsername, identity.Username)
			c.Set(ContextKeyRole, identity.Role)

			return next(c)
		}
	}
}

func unauthenticated(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
}

func validationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "bad_signature"
	default:
		return "malformed"
	}
}
