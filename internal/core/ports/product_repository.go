package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// ProductRepository defines persistence for the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	// Update replaces the stored product matching product.ID.
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}
