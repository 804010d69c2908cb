package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// CartItemInput references a product and the requested quantity.
type CartItemInput struct {
	ProductID string
	Quantity  int
}

// CartService manages per-user carts with stock enforcement.
// AddItem and UpdateItem return the affected product so the transport layer
// can name it in the confirmation message.
type CartService interface {
	// AddItem puts the requested quantity in the cart, merging with any
	// existing line for the same product. The merged quantity must not
	// exceed the product's stock.
	AddItem(ctx context.Context, username string, input CartItemInput) (*domain.Product, error)
	// GetCart returns the user's cart, or an empty cart when none exists.
	GetCart(ctx context.Context, username string) (*domain.Cart, error)
	// UpdateItem sets the quantity of an item already in the cart.
	UpdateItem(ctx context.Context, username string, input CartItemInput) (*domain.Product, error)
	RemoveItem(ctx context.Context, username, productID string) error
	Clear(ctx context.Context, username string) error
}
