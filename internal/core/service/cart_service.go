package service

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

// CartService manages per-user carts. Every quantity change is checked
// against the product's current stock before it is persisted.
type CartService struct {
	products ports.ProductRepository
	carts    ports.CartRepository
}

func NewCartService(products ports.ProductRepository, carts ports.CartRepository) *CartService {
	return &CartService{products: products, carts: carts}
}

// AddItem merges the requested quantity into any existing line for the same
// product. The stock check applies to the merged total, so repeatedly adding
// one unit cannot exceed what is available.
func (s *CartService) AddItem(ctx context.Context, username string, input ports.CartItemInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrCartNotFound) {
			return nil, err
		}
		cart = &domain.Cart{Username: username}
	}

	total := input.Quantity
	idx := cart.Find(input.ProductID)
	if idx >= 0 {
		total += cart.Items[idx].Quantity
	}
	if total > product.Stock {
		return nil, domain.ErrInsufficientStock
	}

	if idx >= 0 {
		cart.Items[idx].Quantity = total
	} else {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: input.ProductID, Quantity: input.Quantity})
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return product, nil
}

// GetCart never fails on a missing cart; the user simply sees an empty one.
func (s *CartService) GetCart(ctx context.Context, username string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return &domain.Cart{Username: username, Items: []domain.CartItem{}}, nil
		}
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return cart, nil
}

func (s *CartService) UpdateItem(ctx context.Context, username string, input ports.CartItemInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if input.Quantity > product.Stock {
		return nil, domain.ErrInsufficientStock
	}

	cart, err := s.carts.Get(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}

	idx := cart.Find(input.ProductID)
	if idx < 0 {
		return nil, domain.ErrCartItemNotFound
	}
	cart.Items[idx].Quantity = input.Quantity

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CartService) RemoveItem(ctx context.Context, username, productID string) error {
	cart, err := s.carts.Get(ctx, username)
	if err != nil {
		return err
	}

	idx := cart.Find(productID)
	if idx < 0 {
		return domain.ErrCartItemNotFound
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	return s.carts.Save(ctx, cart)
}

func (s *CartService) Clear(ctx context.Context, username string) error {
	return s.carts.Delete(ctx, username)
}
