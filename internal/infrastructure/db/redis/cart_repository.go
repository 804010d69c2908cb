package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taskhive/taskhive/internal/core/domain"
)

const cartKeyPrefix = "cart:"

// CartRepository stores each user's cart as a JSON value under
// cart:<username>. Carts have no TTL; they live until cleared.
type CartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{client: client}
}

func (r *CartRepository) Get(ctx context.Context, username string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, r.key(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.client.Set(ctx, r.key(cart.Username), data, 0).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, username string) error {
	n, err := r.client.Del(ctx, r.key(username)).Result()
	if err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	if n == 0 {
		return domain.ErrCartNotFound
	}
	return nil
}

func (r *CartRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *CartRepository) key(username string) string {
	return cartKeyPrefix + username
}
