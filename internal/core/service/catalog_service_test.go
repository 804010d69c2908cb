package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(product), nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		out = append(out, cloneProduct(product))
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func TestCatalogService_AddProduct_AssignsDistinctIDs(t *testing.T) {
	svc := NewCatalogService(newStubProductRepo(), zerolog.Nop())

	first, err := svc.AddProduct(context.Background(), ports.ProductInput{Name: "Widget", Price: 9.99, Stock: 3})
	if err != nil {
		t.Fatalf("AddProduct returned error: %v", err)
	}
	second, err := svc.AddProduct(context.Background(), ports.ProductInput{Name: "Gadget", Price: 19.99, Stock: 5})
	if err != nil {
		t.Fatalf("AddProduct returned error: %v", err)
	}

	if first.ID == "" || second.ID == "" {
		t.Fatalf("products must get generated IDs")
	}
	if first.ID == second.ID {
		t.Fatalf("product IDs must be unique")
	}
}

func TestCatalogService_UpdateProduct_KeepsID(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, _ := svc.AddProduct(context.Background(), ports.ProductInput{Name: "Widget", Price: 9.99, Stock: 3})

	updated, err := svc.UpdateProduct(context.Background(), created.ID, ports.ProductInput{
		Name:        "Widget v2",
		Description: "improved",
		Price:       12.50,
		Stock:       10,
	})
	if err != nil {
		t.Fatalf("UpdateProduct returned error: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("ID changed on update: %q vs %q", updated.ID, created.ID)
	}
	if updated.Name != "Widget v2" || updated.Price != 12.50 || updated.Stock != 10 {
		t.Errorf("fields not replaced: %+v", updated)
	}
}

func TestCatalogService_UnknownProduct(t *testing.T) {
	svc := NewCatalogService(newStubProductRepo(), zerolog.Nop())

	if _, err := svc.GetProduct(context.Background(), "missing"); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := svc.UpdateProduct(context.Background(), "missing", ports.ProductInput{Name: "x", Price: 1, Stock: 1}); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), "missing"); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
