package ports

import (
	"context"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// ProductInput carries the admin-editable product fields.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// CatalogService defines product management and browsing.
type CatalogService interface {
	AddProduct(ctx context.Context, input ProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
