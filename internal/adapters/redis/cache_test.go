package redis_test

import (
	"context"
	"testing"
	"time"

	adaptredis "github.com/rafaelleal24/orderplacement/internal/adapters/redis"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
)

func TestCache_SetAndGet(t *testing.T) {
	cache := adaptredis.NewCache[domain.Order](testClient, "test-cache")
	ctx := context.Background()

	t.Run("round trips an order", func(t *testing.T) {
		order := domain.NewOrder("ccddaabbee112233aabbccdd", []domain.OrderItem{
			*domain.NewOrderItem("aabbccddee112233aabbccd1", "Keyboard", 2, domain.NewAmountFromCents(1000)),
		})
		order.ID = "aabbccddee112233aabbccdd"

		if err := cache.Set(ctx, "order:1", order, time.Minute); err != nil {
			t.Fatalf("expected no error on set, got %v", err)
		}

		got, err := cache.Get(ctx, "order:1")
		if err != nil {
			t.Fatalf("expected no error on get, got %v", err)
		}
		if got == nil {
			t.Fatal("expected order, got nil")
		}
		if got.ID != order.ID {
			t.Fatalf("expected id %s, got %s", order.ID, got.ID)
		}
		if got.TotalAmount != order.TotalAmount {
			t.Fatalf("expected total %d, got %d", order.TotalAmount, got.TotalAmount)
		}
		if len(got.Items) != 1 || got.Items[0].UnitPrice != domain.NewAmountFromCents(1000) {
			t.Fatalf("unexpected items %+v", got.Items)
		}
	})

	t.Run("get returns nil for missing key", func(t *testing.T) {
		got, err := cache.Get(ctx, "nonexistent-key")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("ttl expires value", func(t *testing.T) {
		if err := cache.Set(ctx, "ttl-item", &domain.Order{ID: "x"}, 100*time.Millisecond); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		time.Sleep(200 * time.Millisecond)

		got, err := cache.Get(ctx, "ttl-item")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil (expired), got %+v", got)
		}
	})

	t.Run("undecodable entry reads as miss", func(t *testing.T) {
		if err := testClient.Set(ctx, "test-cache:corrupt", []byte("{not json"), time.Minute); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := cache.Get(ctx, "corrupt")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}

func TestClient_GetMiss(t *testing.T) {
	_, err := testClient.Get(context.Background(), "client-missing")
	if err != adaptredis.ErrMiss {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
}
