package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// Role predicates. Pure functions so handlers can evaluate them directly when
// the resource owner comes from the request body rather than the path.

// IsAdmin reports whether the role grants admin-only access.
func IsAdmin(role string) bool {
	return role == domain.RoleAdmin
}

// IsSelfOrAdmin reports whether the caller may act on the owner's resources:
// admins always, everyone else only on their own.
func IsSelfOrAdmin(username, role, owner string) bool {
	return role == domain.RoleAdmin || username == owner
}

// IsAuthenticated reports whether a verified identity is present.
func IsAuthenticated(username string) bool {
	return username != ""
}

// RequireAdmin rejects any caller whose token does not carry the admin role.
// Must run after Authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			if !IsAdmin(role) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireSelfOrAdmin restricts the route to the account named by the given
// path parameter, or to an admin. Must run after Authenticate.
func RequireSelfOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, _ := c.Get(ContextKeyUsername).(string)
			role, _ := c.Get(ContextKeyRole).(string)
			if !IsSelfOrAdmin(username, role, c.Param(param)) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
