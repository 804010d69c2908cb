package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/taskhive/taskhive/internal/api/handler"
	"github.com/taskhive/taskhive/internal/api/middleware"
	"github.com/taskhive/taskhive/internal/audit"
	"github.com/taskhive/taskhive/internal/core/ports"
	"github.com/taskhive/taskhive/internal/ratelimit"
)

// Deps carries the dependencies shared by every router: the auth surface,
// observability, and the readiness checks for the stores the binary uses.
type Deps struct {
	Logger  zerolog.Logger
	Auth    ports.AuthService
	Tokens  ports.TokenService
	Limiter *ratelimit.Limiter
	Audit   *audit.Dispatcher
	Checks  map[string]ports.Pinger
}

// newEcho builds the Echo instance with the global middleware, the shared
// auth routes, and the observability surface registered.
func newEcho(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskhive"))

	// --- Auth routes (rate-limited entry points + self-service) ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Audit)
	e.POST("/register/", authHandler.Register, middleware.RateLimit(deps.Limiter, "register"))
	e.POST("/login/", authHandler.Login, middleware.RateLimit(deps.Limiter, "login"))
	e.PUT("/change-password/", authHandler.ChangePassword, middleware.Authenticate(deps.Tokens))

	// --- Observability ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// NewStudentPortalRouter wires the student portal: shared auth plus grade
// management and student records.
func NewStudentPortalRouter(deps Deps, students ports.StudentService) *echo.Echo {
	e := newEcho(deps)

	h := handler.NewStudentHandler(students)
	authed := middleware.Authenticate(deps.Tokens)
	admin := middleware.RequireAdmin()

	e.PUT("/grades/:username", h.UpdateGrades, authed, admin)
	e.GET("/grades/", h.GetOwnRecord, authed)
	e.GET("/students/", h.List)
	e.GET("/students/:name", h.Get)
	e.PUT("/students/:name", h.Update, authed, admin)
	e.DELETE("/students/:name", h.Delete, authed, admin)

	return e
}

// NewShopCartRouter wires the shopping cart API: shared auth, the public
// product catalog with admin management, and the per-user cart.
func NewShopCartRouter(deps Deps, catalog ports.CatalogService, carts ports.CartService) *echo.Echo {
	e := newEcho(deps)

	products := handler.NewProductHandler(catalog)
	cart := handler.NewCartHandler(carts)
	authed := middleware.Authenticate(deps.Tokens)
	admin := middleware.RequireAdmin()

	e.POST("/admin/add_product/", products.Add, authed, admin)
	e.PUT("/admin/products/:product_id", products.Update, authed, admin)
	e.DELETE("/admin/products/:product_id", products.Delete, authed, admin)
	e.GET("/products/", products.List)
	e.GET("/products/:product_id", products.Get)

	e.POST("/cart/add/", cart.AddItem, authed)
	e.GET("/cart/", cart.GetCart, authed)
	e.PUT("/cart/", cart.UpdateItem, authed)
	e.DELETE("/cart/:product_id", cart.RemoveItem, authed)
	e.DELETE("/cart/", cart.Clear, authed)

	return e
}

// NewJobTrackerRouter wires the job application tracker: shared auth plus
// per-user application records.
func NewJobTrackerRouter(deps Deps, applications ports.ApplicationService) *echo.Echo {
	e := newEcho(deps)

	h := handler.NewApplicationHandler(applications)
	authed := middleware.Authenticate(deps.Tokens)

	e.POST("/applications/", h.Add, authed)
	e.GET("/applications/", h.List, authed)

	return e
}

// NewNotesRouter wires the notes API: shared auth plus per-user notes.
func NewNotesRouter(deps Deps, notes ports.NoteService) *echo.Echo {
	e := newEcho(deps)

	h := handler.NewNoteHandler(notes)
	authed := middleware.Authenticate(deps.Tokens)

	e.POST("/notes/", h.Add, authed)
	e.GET("/notes/", h.List, authed)

	return e
}
