package outbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rafaelleal24/orderplacement/internal/adapters/config"
	"github.com/rafaelleal24/orderplacement/internal/adapters/outbox"
	outboxmock "github.com/rafaelleal24/orderplacement/internal/adapters/outbox/mock"
	portmock "github.com/rafaelleal24/orderplacement/internal/core/port/mock"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T, interval time.Duration) (*outbox.Handler, *outboxmock.MockRepository, *portmock.MockBrokerPort) {
	ctrl := gomock.NewController(t)
	broker := portmock.NewMockBrokerPort(ctrl)
	repo := outboxmock.NewMockRepository(ctrl)

	handler := outbox.NewHandler(repo, broker, config.OutboxConfig{
		Interval:  interval,
		BatchSize: 10,
	})
	return handler, repo, broker
}

func TestHandler_Relay(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and deletes events", func(t *testing.T) {
		handler, repo, broker := setupHandler(t, time.Hour)

		entries := []outbox.Entry{
			{ID: "1", EventName: "order.placed", EntityName: "order", EventData: []byte(`{"order_id":"1"}`)},
			{ID: "2", EventName: "order.placed", EntityName: "order", EventData: []byte(`{"order_id":"2"}`)},
		}

		repo.EXPECT().FetchPending(gomock.Any(), 10).Return(entries, nil)
		gomock.InOrder(
			broker.EXPECT().PublishRaw(gomock.Any(), "order.placed", "order", []byte(`{"order_id":"1"}`)).Return(nil),
			repo.EXPECT().Delete(gomock.Any(), "1").Return(nil),
			broker.EXPECT().PublishRaw(gomock.Any(), "order.placed", "order", []byte(`{"order_id":"2"}`)).Return(nil),
			repo.EXPECT().Delete(gomock.Any(), "2").Return(nil),
		)

		published, err := handler.Relay(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if published != 2 {
			t.Fatalf("expected 2 published, got %d", published)
		}
	})

	t.Run("keeps event on publish failure", func(t *testing.T) {
		handler, repo, broker := setupHandler(t, time.Hour)

		entries := []outbox.Entry{
			{ID: "1", EventName: "order.placed", EntityName: "order", EventData: []byte(`{"order_id":"1"}`)},
			{ID: "2", EventName: "order.placed", EntityName: "order", EventData: []byte(`{"order_id":"2"}`)},
		}

		repo.EXPECT().FetchPending(gomock.Any(), 10).Return(entries, nil)
		broker.EXPECT().PublishRaw(gomock.Any(), "order.placed", "order", []byte(`{"order_id":"1"}`)).Return(errors.New("publish failed"))
		broker.EXPECT().PublishRaw(gomock.Any(), "order.placed", "order", []byte(`{"order_id":"2"}`)).Return(nil)
		repo.EXPECT().Delete(gomock.Any(), "2").Return(nil)

		published, err := handler.Relay(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if published != 1 {
			t.Fatalf("expected 1 published, got %d", published)
		}
	})

	t.Run("delete failure still counts as published", func(t *testing.T) {
		handler, repo, broker := setupHandler(t, time.Hour)

		repo.EXPECT().FetchPending(gomock.Any(), 10).Return([]outbox.Entry{
			{ID: "1", EventName: "order.placed", EntityName: "order", EventData: []byte(`{}`)},
		}, nil)
		broker.EXPECT().PublishRaw(gomock.Any(), "order.placed", "order", []byte(`{}`)).Return(nil)
		repo.EXPECT().Delete(gomock.Any(), "1").Return(errors.New("delete failed"))

		published, err := handler.Relay(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if published != 1 {
			t.Fatalf("expected 1 published, got %d", published)
		}
	})

	t.Run("fetch error is returned", func(t *testing.T) {
		handler, repo, _ := setupHandler(t, time.Hour)
		fetchErr := errors.New("db down")

		repo.EXPECT().FetchPending(gomock.Any(), 10).Return(nil, fetchErr)

		_, err := handler.Relay(ctx)
		if !errors.Is(err, fetchErr) {
			t.Fatalf("expected %v, got %v", fetchErr, err)
		}
	})

	t.Run("stops publishing once context is cancelled", func(t *testing.T) {
		handler, repo, _ := setupHandler(t, time.Hour)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		repo.EXPECT().FetchPending(gomock.Any(), 10).Return([]outbox.Entry{{ID: "1"}}, nil)

		published, err := handler.Relay(cancelled)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if published != 0 {
			t.Fatalf("expected 0 published, got %d", published)
		}
	})
}

func TestHandler_StartPollsUntilCancelled(t *testing.T) {
	handler, repo, _ := setupHandler(t, 20*time.Millisecond)

	polled := make(chan struct{}, 1)
	repo.EXPECT().
		FetchPending(gomock.Any(), 10).
		DoAndReturn(func(context.Context, int) ([]outbox.Entry, error) {
			select {
			case polled <- struct{}{}:
			default:
			}
			return nil, nil
		}).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		handler.Start(ctx)
		close(done)
	}()

	select {
	case <-polled:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not poll")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not stop after context cancellation")
	}
}
