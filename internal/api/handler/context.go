package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Authenticate middleware
// and performs a fast-fail check before any service call: a missing username
// means the middleware never ran, so the route is misconfigured or the
// request slipped past the guard; reject with 401.
func ctxIdentity(c echo.Context) (username, role string, err error) {
	username, _ = c.Get(middleware.ContextKeyUsername).(string)
	role, _ = c.Get(middleware.ContextKeyRole).(string)
	if !middleware.IsAuthenticated(username) {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	}
	return username, role, nil
}
