package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/ratelimit"
)

func TestRateLimit_AllowsUnderCap(t *testing.T) {
	e := echo.New()
	limiter := ratelimit.New(2, 0)

	handler := RateLimit(limiter, "login")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := handler(c); err != nil {
			t.Fatalf("request %d: unexpected error %v", i+1, err)
		}
	}
}

func TestRateLimit_RejectsOverCap(t *testing.T) {
	e := echo.New()
	limiter := ratelimit.New(1, 0)

	handler := RateLimit(limiter, "login")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/login/", nil)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("first request: unexpected error %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/login/", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 HTTPError, got %v", err)
	}
	if rec.Header().Get(echo.HeaderRetryAfter) == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestRateLimit_NilLimiterDisables(t *testing.T) {
	e := echo.New()

	handler := RateLimit(nil, "register")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/register/", nil)
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("request %d: unexpected error %v", i+1, err)
		}
	}
}
