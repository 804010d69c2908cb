package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/api/middleware"
	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

type stubAuthService struct {
	registerFn       func(ctx context.Context, username, password string) (*domain.Account, error)
	loginFn          func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	changePasswordFn func(ctx context.Context, username, newPassword string) error
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, username, newPassword string) error {
	return s.changePasswordFn(ctx, username, newPassword)
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
			if username != "alice" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.Account{Username: username, Role: domain.RoleStudent}, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newAuthTestContext(t, http.MethodPost, "/register/", `{"username":"alice","password":"secret1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Registration successful" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newAuthTestContext(t, http.MethodPost, "/register/", `{"username":"alice","password":"secret1"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newAuthTestContext(t, http.MethodPost, "/register/", "not-json")
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationRules(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "short username", body: `{"username":"ab","password":"secret1"}`},
		{name: "short password", body: `{"username":"alice","password":"12345"}`},
		{name: "missing username", body: `{"password":"secret1"}`},
		{name: "missing password", body: `{"username":"alice"}`},
	}

	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	for _, tc := range cases {
		c, _ := newAuthTestContext(t, http.MethodPost, "/register/", tc.body)
		err := h.Register(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422 HTTPError, got %v", tc.name, err)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "alice" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.LoginResult{AccessToken: "token123", TokenType: "bearer"}, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newAuthTestContext(t, http.MethodPost, "/login/", `{"username":"alice","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" || resp["token_type"] != "bearer" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
}

func TestAuthHandler_Login_FormEncoded(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "alice" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.LoginResult{AccessToken: "token123", TokenType: "bearer"}, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "secret1")

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/login/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newAuthTestContext(t, http.MethodPost, "/login/", `{"username":"alice","password":"wrong1"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_ChangePassword_Self(t *testing.T) {
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, newPassword string) error {
			if username != "alice" || newPassword != "newpass1" {
				t.Fatalf("unexpected args: %s %s", username, newPassword)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newAuthTestContext(t, http.MethodPut, "/change-password/", `{"new_password":"newpass1"}`)
	c.Set(middleware.ContextKeyUsername, "alice")
	c.Set(middleware.ContextKeyRole, domain.RoleStudent)

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Password changed successfully" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestAuthHandler_ChangePassword_MemberCannotTargetOthers(t *testing.T) {
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, newPassword string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newAuthTestContext(t, http.MethodPut, "/change-password/", `{"username":"bob","new_password":"newpass1"}`)
	c.Set(middleware.ContextKeyUsername, "alice")
	c.Set(middleware.ContextKeyRole, domain.RoleStudent)

	if err := h.ChangePassword(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthHandler_ChangePassword_AdminTargetsOther(t *testing.T) {
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, newPassword string) error {
			if username != "bob" {
				t.Fatalf("expected target bob, got %s", username)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newAuthTestContext(t, http.MethodPut, "/change-password/", `{"username":"bob","new_password":"newpass1"}`)
	c.Set(middleware.ContextKeyUsername, "root")
	c.Set(middleware.ContextKeyRole, domain.RoleAdmin)

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_ChangePassword_AdminUnknownTarget(t *testing.T) {
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, newPassword string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newAuthTestContext(t, http.MethodPut, "/change-password/", `{"username":"ghost","new_password":"newpass1"}`)
	c.Set(middleware.ContextKeyUsername, "root")
	c.Set(middleware.ContextKeyRole, domain.RoleAdmin)

	if err := h.ChangePassword(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthHandler_ChangePassword_Unauthenticated(t *testing.T) {
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, newPassword string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newAuthTestContext(t, http.MethodPut, "/change-password/", `{"new_password":"newpass1"}`)

	err := h.ChangePassword(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
