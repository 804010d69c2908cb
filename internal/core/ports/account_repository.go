package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// AccountRepository defines persistence for the shared credential records.
// Create must be atomic under concurrent registration of the same username:
// exactly one caller succeeds, every other caller gets domain.ErrUserExists.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// UpdatePassword replaces the stored hash for an existing account.
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	// CountByRole reports how many accounts hold the given role.
	CountByRole(ctx context.Context, role string) (int64, error)
}

// Pinger is implemented by stores that can report backend reachability.
// The readiness probe collects one result per registered store.
type Pinger interface {
	Ping(ctx context.Context) error
}
