package outbox

import (
	"context"
	"time"

	"github.com/rafaelleal24/orderplacement/internal/adapters/config"
	"github.com/rafaelleal24/orderplacement/internal/core/logger"
	"github.com/rafaelleal24/orderplacement/internal/core/port"
)

// Handler relays pending outbox entries to the broker, oldest first. Entries
// are deleted only after a successful publish, so delivery is at least once.
type Handler struct {
	outbox   Repository
	broker   port.BrokerPort
	interval time.Duration
	batch    int
}

func NewHandler(outbox Repository, broker port.BrokerPort, config config.OutboxConfig) *Handler {
	return &Handler{
		outbox:   outbox,
		broker:   broker,
		interval: config.Interval,
		batch:    config.BatchSize,
	}
}

// Start polls every interval until ctx is cancelled.
func (h *Handler) Start(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := h.Relay(ctx); err != nil {
				logger.Error(ctx, "outbox: failed to fetch pending events", err, map[string]any{
					"batch": h.batch,
				})
			}
		}
	}
}

// Relay publishes one batch of pending entries and returns how many were
// published. Entries that fail to publish stay in the outbox for the next run.
func (h *Handler) Relay(ctx context.Context) (int, error) {
	entries, err := h.outbox.FetchPending(ctx, h.batch)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		eventLogAttributes := map[string]any{
			"event_id":    entry.ID,
			"event_name":  entry.EventName,
			"entity_name": entry.EntityName,
		}
		if err := h.broker.PublishRaw(ctx, entry.EventName, entry.EntityName, entry.EventData); err != nil {
			logger.Error(ctx, "outbox: failed to publish event", err, eventLogAttributes)
			continue
		}
		published++

		logger.Debug(ctx, "outbox: event published", eventLogAttributes)

		if err := h.outbox.Delete(ctx, entry.ID); err != nil {
			logger.Error(ctx, "outbox: failed to delete event after publish", err, eventLogAttributes)
		}
	}

	return published, nil
}
