package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/api/metrics"
	"github.com/taskhive/taskhive/internal/api/middleware"
	"github.com/taskhive/taskhive/internal/audit"
	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

// AuthHandler serves the shared authentication surface: registration, login,
// and password changes.
type AuthHandler struct {
	service ports.AuthService
	audit   *audit.Dispatcher
}

func NewAuthHandler(service ports.AuthService, auditor *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{service: service, audit: auditor}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type changePasswordRequest struct {
	Username    string `json:"username,omitempty"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new account with the default member role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /register/ [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if _, err := h.service.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		h.record(c, audit.ActionRegister, req.Username, false, err.Error())
		metrics.RegistrationsTotal.WithLabelValues(registrationResult(err)).Inc()
		return err
	}

	h.record(c, audit.ActionRegister, req.Username, true, "")
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Registration successful"})
}

// Login verifies credentials and issues a session token.
//
// @Summary      Log in and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /login/ [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		h.record(c, audit.ActionLogin, req.Username, false, err.Error())
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	h.record(c, audit.ActionLogin, req.Username, true, "")
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	})
}

// ChangePassword updates the password of the caller's account, or of any
// account when the caller is an admin. The ownership check runs here because
// the target comes from the request body, not the path.
//
// @Summary      Change a password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Target username (admins only, defaults to caller) and new password"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /change-password/ [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	username, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	target := req.Username
	if target == "" {
		target = username
	}
	if !middleware.IsSelfOrAdmin(username, role, target) {
		return domain.ErrForbidden
	}

	if err := h.service.ChangePassword(c.Request().Context(), target, req.NewPassword); err != nil {
		h.record(c, audit.ActionChangePassword, target, false, err.Error())
		return err
	}

	h.record(c, audit.ActionChangePassword, target, true, "")
	return c.JSON(http.StatusOK, messageResponse{Message: "Password changed successfully"})
}

func (h *AuthHandler) record(c echo.Context, action, username string, success bool, detail string) {
	h.audit.Record(audit.Event{
		Action:   action,
		Username: username,
		ClientIP: c.RealIP(),
		Success:  success,
		Detail:   detail,
	})
}

func registrationResult(err error) string {
	if errors.Is(err, domain.ErrUserExists) {
		return "duplicate"
	}
	return "error"
}

func loginResult(err error) string {
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return "invalid_credentials"
	}
	return "error"
}
