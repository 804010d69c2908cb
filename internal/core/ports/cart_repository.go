package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// CartRepository defines persistence for per-user shopping carts.
type CartRepository interface {
	// Get returns the user's cart, or domain.ErrCartNotFound when the user
	// has never added an item.
	Get(ctx context.Context, username string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	// Delete removes the cart entirely; domain.ErrCartNotFound when absent.
	Delete(ctx context.Context, username string) error
}
