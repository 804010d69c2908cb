package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/core/domain"
)

func TestPredicates(t *testing.T) {
	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{name: "admin is admin", got: IsAdmin(domain.RoleAdmin), want: true},
		{name: "student is not admin", got: IsAdmin(domain.RoleStudent), want: false},
		{name: "empty role is not admin", got: IsAdmin(""), want: false},
		{name: "self passes self-or-admin", got: IsSelfOrAdmin("alice", domain.RoleStudent, "alice"), want: true},
		{name: "other fails self-or-admin", got: IsSelfOrAdmin("alice", domain.RoleStudent, "bob"), want: false},
		{name: "admin passes self-or-admin for anyone", got: IsSelfOrAdmin("root", domain.RoleAdmin, "bob"), want: true},
		{name: "usernames are case-sensitive", got: IsSelfOrAdmin("Alice", domain.RoleStudent, "alice"), want: false},
		{name: "identity present is authenticated", got: IsAuthenticated("alice"), want: true},
		{name: "no identity is unauthenticated", got: IsAuthenticated(""), want: false},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestRequireAdmin_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUsername, "root")
	c.Set(ContextKeyRole, domain.RoleAdmin)

	called := false
	handler := RequireAdmin()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireAdmin_Forbids(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUsername, "alice")
	c.Set(ContextKeyRole, domain.RoleStudent)

	handler := RequireAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	cases := []struct {
		name     string
		username string
		role     string
		param    string
		allow    bool
	}{
		{name: "self allowed", username: "alice", role: domain.RoleStudent, param: "alice", allow: true},
		{name: "admin allowed", username: "root", role: domain.RoleAdmin, param: "alice", allow: true},
		{name: "other member forbidden", username: "bob", role: domain.RoleStudent, param: "alice", allow: false},
		{name: "missing identity forbidden", username: "", role: "", param: "alice", allow: false},
	}

	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("username")
		c.SetParamValues(tc.param)
		if tc.username != "" {
			c.Set(ContextKeyUsername, tc.username)
			c.Set(ContextKeyRole, tc.role)
		}

		called := false
		handler := RequireSelfOrAdmin("username")(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})

		err := handler(c)
		if tc.allow {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
			}
			if !called {
				t.Errorf("%s: next handler not called", tc.name)
			}
			continue
		}
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("%s: expected ErrForbidden, got %v", tc.name, err)
		}
	}
}
