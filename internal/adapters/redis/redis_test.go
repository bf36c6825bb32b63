package redis_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/rafaelleal24/orderplacement/internal/adapters/config"
	adaptredis "github.com/rafaelleal24/orderplacement/internal/adapters/redis"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

var testClient *adaptredis.Client

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		log.Fatalf("redis container: %v", err)
	}

	code, err := runWithClient(ctx, container, m)
	if err != nil {
		log.Printf("redis setup: %v", err)
		code = 1
	}

	_ = container.Terminate(ctx)
	os.Exit(code)
}

func runWithClient(ctx context.Context, container *tcredis.RedisContainer, m *testing.M) (int, error) {
	endpoint, err := container.ConnectionString(ctx)
	if err != nil {
		return 0, fmt.Errorf("connection string: %w", err)
	}

	testClient, err = adaptredis.NewConnection(config.RedisConfig{URL: endpoint})
	if err != nil {
		return 0, fmt.Errorf("connect: %w", err)
	}
	defer testClient.Close()

	return m.Run(), nil
}

func TestNewConnection_InvalidURL(t *testing.T) {
	if _, err := adaptredis.NewConnection(config.RedisConfig{URL: "not-a-url"}); err == nil {
		t.Fatal("expected error for malformed URL")
	}
}

func TestClient_GetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips bytes", func(t *testing.T) {
		if err := testClient.Set(ctx, "client-test:value", []byte("payload"), time.Minute); err != nil {
			t.Fatalf("set: %v", err)
		}
		data, err := testClient.Get(ctx, "client-test:value")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if string(data) != "payload" {
			t.Fatalf("expected payload, got %q", data)
		}
	})

	t.Run("ping", func(t *testing.T) {
		if err := testClient.Ping(ctx); err != nil {
			t.Fatalf("ping: %v", err)
		}
	})
}
