// Package app assembles the runtime shared by every service binary:
// configuration, logging, the credential store, token issuing, rate
// limiting and the audit trail. Binaries add their own stores and
// services on top before building a router.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhive/taskhive/internal/api"
	"github.com/taskhive/taskhive/internal/audit"
	"github.com/taskhive/taskhive/internal/core/ports"
	"github.com/taskhive/taskhive/internal/core/service"
	"github.com/taskhive/taskhive/internal/infrastructure/config"
	"github.com/taskhive/taskhive/internal/infrastructure/db/jsonfile"
	mongodb "github.com/taskhive/taskhive/internal/infrastructure/db/mongo"
	"github.com/taskhive/taskhive/internal/ratelimit"
	"github.com/taskhive/taskhive/pkg/logger"
)

const (
	auditBuffer     = 256
	shutdownTimeout = 10 * time.Second
)

// App holds the shared runtime assembled by New.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Accounts ports.AccountRepository
	Auth     *service.AuthService
	Tokens   *service.TokenService
	Limiter  *ratelimit.Limiter
	Audit    *audit.Dispatcher
	Checks   map[string]ports.Pinger

	auditFile *os.File
	closers   []func()
}

// New builds the shared runtime for one service binary. name tags log lines,
// memberRole is the role assigned to accounts registered through this binary.
func New(ctx context.Context, name, memberRole string) (*App, error) {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: name,
	})

	a := &App{
		Config: cfg,
		Logger: log,
		Checks: map[string]ports.Pinger{},
	}

	if err := a.openAccountStore(ctx); err != nil {
		return nil, err
	}
	if err := a.openAuditTrail(); err != nil {
		a.Close()
		return nil, err
	}

	a.Tokens = service.NewTokenService(cfg.SecretKey, cfg.TokenTTL)
	a.Auth = service.NewAuthService(a.Accounts, service.NewBcryptHasher(), a.Tokens, memberRole, log)
	if cfg.RateLimit.Max > 0 {
		a.Limiter = ratelimit.New(cfg.RateLimit.Max, cfg.RateLimit.Window)
	}

	if err := a.Auth.EnsureDefaultAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		a.Close()
		return nil, fmt.Errorf("seed default admin: %w", err)
	}

	return a, nil
}

func (a *App) openAccountStore(ctx context.Context) error {
	switch a.Config.AuthStore {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      a.Config.Mongo.URI,
			Database: a.Config.Mongo.Database,
		})
		if err != nil {
			return fmt.Errorf("open account store: %w", err)
		}
		repo := mongodb.NewAccountRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return fmt.Errorf("open account store: %w", err)
		}
		a.AddCloser(func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		})
		a.Accounts = repo
		a.Checks["users"] = repo

	case "file", "":
		repo, err := jsonfile.NewAccountRepository(a.Config.Files.Users)
		if err != nil {
			return fmt.Errorf("open account store: %w", err)
		}
		a.Accounts = repo
		a.Checks["users"] = repo

	default:
		return fmt.Errorf("open account store: unknown AUTH_STORE %q", a.Config.AuthStore)
	}
	return nil
}

func (a *App) openAuditTrail() error {
	if a.Config.AuditLog == "" {
		return nil
	}
	f, err := os.OpenFile(a.Config.AuditLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit trail: %w", err)
	}
	a.auditFile = f
	a.Audit = audit.NewDispatcher(audit.NewWriterSink(f), auditBuffer)
	return nil
}

// AddCloser registers fn to run during Close, after the audit trail drains.
// Closers run in reverse registration order.
func (a *App) AddCloser(fn func()) {
	a.closers = append(a.closers, fn)
}

// Deps bundles the shared runtime for the router constructors.
func (a *App) Deps() api.Deps {
	return api.Deps{
		Logger:  a.Logger,
		Auth:    a.Auth,
		Tokens:  a.Tokens,
		Limiter: a.Limiter,
		Audit:   a.Audit,
		Checks:  a.Checks,
	}
}

// Serve runs the server until the context is cancelled or an interrupt
// arrives, then drains in-flight requests and releases shared resources.
func (a *App) Serve(ctx context.Context, e *echo.Echo) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + a.Config.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	a.Logger.Info().Str("port", a.Config.Port).Str("env", a.Config.Env).Msg("server started")

	<-ctx.Done()
	a.Logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	a.Close()
}

// Close drains the audit trail and releases everything New and AddCloser
// registered. Safe to call more than once.
func (a *App) Close() {
	a.Audit.Close()
	if a.auditFile != nil {
		_ = a.auditFile.Close()
		a.auditFile = nil
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
