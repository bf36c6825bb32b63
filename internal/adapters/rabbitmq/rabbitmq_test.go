package rabbitmq_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rafaelleal24/orderplacement/internal/adapters/config"
	"github.com/rafaelleal24/orderplacement/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	tcrabbit "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
)

var (
	testPublisher    *rabbitmq.Publisher
	testAmqpEndpoint string
)

func testConfig(maxRetries int) config.RabbitMQConfig {
	return config.RabbitMQConfig{
		URL:        testAmqpEndpoint,
		MaxRetries: maxRetries,
		RetryDelay: 100 * time.Millisecond,
		ExchangeConfigs: []config.ExchangeConfig{
			{
				Name:       "exchange.order",
				Type:       "direct",
				Durable:    true,
				AutoDelete: false,
			},
		},
	}
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcrabbit.Run(ctx, "rabbitmq:3-management-alpine")
	if err != nil {
		log.Fatalf("failed to start rabbitmq container: %v", err)
	}

	testAmqpEndpoint, err = container.AmqpURL(ctx)
	if err != nil {
		log.Fatalf("failed to get amqp url: %v", err)
	}

	testPublisher, err = rabbitmq.NewPublisher(testConfig(2))
	if err != nil {
		log.Fatalf("failed to create rabbitmq publisher: %v", err)
	}

	code := m.Run()

	_ = testPublisher.Close()
	_ = container.Terminate(ctx)

	os.Exit(code)
}

func bindTestQueue(t *testing.T, routingKey string) <-chan amqp.Delivery {
	t.Helper()

	conn, err := amqp.Dial(testAmqpEndpoint)
	if err != nil {
		t.Fatalf("consumer dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ch, err := conn.Channel()
	if err != nil {
		t.Fatalf("consumer channel failed: %v", err)
	}

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		t.Fatalf("queue declare failed: %v", err)
	}
	if err := ch.QueueBind(q.Name, routingKey, "exchange.order", false, nil); err != nil {
		t.Fatalf("queue bind failed: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	return msgs
}

func TestPublisher_HealthCheck(t *testing.T) {
	if err := testPublisher.HealthCheck(); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
}

func TestPublisher_PublishRaw(t *testing.T) {
	ctx := context.Background()

	t.Run("order placed event reaches bound queue", func(t *testing.T) {
		msgs := bindTestQueue(t, "order.placed")

		order := domain.NewOrder("ccddaabbee112233aabbccdd", []domain.OrderItem{
			*domain.NewOrderItem("aabbccddee112233aabbccd1", "Keyboard", 2, domain.NewAmountFromCents(1000)),
		})
		order.ID = "aabbccddee112233aabbccdd"
		event := domain.NewOrderPlacedEvent(order)
		body, _ := json.Marshal(event)

		if err := testPublisher.PublishRaw(ctx, event.GetName(), event.GetEntityName(), body); err != nil {
			t.Fatalf("publish failed: %v", err)
		}

		select {
		case msg := <-msgs:
			if msg.RoutingKey != "order.placed" {
				t.Fatalf("expected routing key order.placed, got %q", msg.RoutingKey)
			}
			if msg.DeliveryMode != amqp.Persistent {
				t.Fatalf("expected persistent delivery, got %d", msg.DeliveryMode)
			}
			var received domain.OrderPlacedEvent
			if err := json.Unmarshal(msg.Body, &received); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if received.OrderID != order.ID {
				t.Fatalf("expected order id %s, got %s", order.ID, received.OrderID)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for message")
		}
	})

	t.Run("cancelled context is returned", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := testPublisher.PublishRaw(cancelled, "order.placed", "order", []byte(`{}`))
		if err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})

	t.Run("missing exchange fails after retries", func(t *testing.T) {
		publisher, err := rabbitmq.NewPublisher(testConfig(1))
		if err != nil {
			t.Fatalf("failed to create publisher: %v", err)
		}
		defer publisher.Close()

		err = publisher.PublishRaw(ctx, "customer.created", "customer", []byte(`{}`))
		if err == nil {
			t.Fatal("expected error publishing to undeclared exchange")
		}

		// the publisher recovers its channel for the next publish
		if err := publisher.PublishRaw(ctx, "order.placed", "order", []byte(`{}`)); err != nil {
			t.Fatalf("expected publish after failure to succeed, got %v", err)
		}
	})
}

func TestPublisher_Close(t *testing.T) {
	publisher, err := rabbitmq.NewPublisher(testConfig(0))
	if err != nil {
		t.Fatalf("failed to create publisher: %v", err)
	}

	if err := publisher.Close(); err != nil {
		t.Fatalf("expected no error on close, got %v", err)
	}
	if err := publisher.HealthCheck(); err == nil {
		t.Fatal("expected health check to fail after close")
	}
}
