package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/taskhive/taskhive/internal/core/domain"
)

func newTestCartRepository(t *testing.T) *CartRepository {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCartRepository(client)
}

func TestCartRepositorySaveAndGet(t *testing.T) {
	repo := newTestCartRepository(t)
	ctx := context.Background()

	cart := &domain.Cart{
		Username: "alice",
		Items: []domain.CartItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	}
	if err := repo.Save(ctx, cart); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("expected username alice, got %q", got.Username)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	if got.Items[0].ProductID != "p1" || got.Items[0].Quantity != 2 {
		t.Errorf("unexpected first item: %+v", got.Items[0])
	}
}

func TestCartRepositoryGetMissing(t *testing.T) {
	repo := newTestCartRepository(t)

	_, err := repo.Get(context.Background(), "nobody")
	if !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestCartRepositorySaveOverwrites(t *testing.T) {
	repo := newTestCartRepository(t)
	ctx := context.Background()

	first := &domain.Cart{Username: "bob", Items: []domain.CartItem{{ProductID: "p1", Quantity: 1}}}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	second := &domain.Cart{Username: "bob", Items: []domain.CartItem{{ProductID: "p9", Quantity: 4}}}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != "p9" || got.Items[0].Quantity != 4 {
		t.Errorf("expected overwritten cart, got %+v", got.Items)
	}
}

func TestCartRepositoryDelete(t *testing.T) {
	repo := newTestCartRepository(t)
	ctx := context.Background()

	cart := &domain.Cart{Username: "carol", Items: []domain.CartItem{{ProductID: "p1", Quantity: 1}}}
	if err := repo.Save(ctx, cart); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := repo.Delete(ctx, "carol"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.Get(ctx, "carol"); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound after delete, got %v", err)
	}
}

func TestCartRepositoryDeleteMissing(t *testing.T) {
	repo := newTestCartRepository(t)

	err := repo.Delete(context.Background(), "nobody")
	if !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestCartRepositoryCartsAreIndependent(t *testing.T) {
	repo := newTestCartRepository(t)
	ctx := context.Background()

	if err := repo.Save(ctx, &domain.Cart{Username: "alice", Items: []domain.CartItem{{ProductID: "p1", Quantity: 1}}}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := repo.Save(ctx, &domain.Cart{Username: "bob", Items: []domain.CartItem{{ProductID: "p2", Quantity: 5}}}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := repo.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	got, err := repo.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Items[0].ProductID != "p2" {
		t.Errorf("bob's cart affected by alice's delete: %+v", got.Items)
	}
}
