package jsonfile

import (
	"context"
	"sort"
	"sync"

	"github.com/taskhive/taskhive/internal/core/domain"
)

// ProductRepository stores the catalog in one JSON file keyed by product ID.
type ProductRepository struct {
	path     string
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewProductRepository(path string) (*ProductRepository, error) {
	r := &ProductRepository{
		path:     path,
		products: make(map[string]*domain.Product),
	}
	if err := readFile(path, &r.products); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *product
	r.products[product.ID] = &clone

	if err := r.persistLocked(); err != nil {
		delete(r.products, product.ID)
		return err
	}
	return nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *ProductRepository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		clone := *product
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ProductRepository) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, ok := r.products[product.ID]
	if !ok {
		return domain.ErrProductNotFound
	}

	clone := *product
	r.products[product.ID] = &clone

	if err := r.persistLocked(); err != nil {
		r.products[product.ID] = previous
		return err
	}
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)

	if err := r.persistLocked(); err != nil {
		r.products[id] = previous
		return err
	}
	return nil
}

func (r *ProductRepository) Ping(context.Context) error {
	return pingDir(r.path)
}

func (r *ProductRepository) persistLocked() error {
	return writeFile(r.path, r.products, 0o644)
}
