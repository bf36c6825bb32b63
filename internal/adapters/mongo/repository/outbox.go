package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafaelleal24/orderplacement/internal/adapters/mongo/document"
	"github.com/rafaelleal24/orderplacement/internal/adapters/outbox"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OutboxRepository stores domain events next to the data they describe. It
// serves both as the core outbox port and as the relay's pending queue.
type OutboxRepository struct {
	*BaseRepository[document.OutboxDocument]
}

var _ port.OutboxPort = (*OutboxRepository)(nil)

func NewOutboxRepository(db *mongo.Database) *OutboxRepository {
	return &OutboxRepository{
		BaseRepository: NewBaseRepository[document.OutboxDocument](db, "outbox"),
	}
}

// Enqueue serializes event as JSON. Called with a transaction context, the
// entry commits or rolls back together with the rest of the transaction.
func (r *OutboxRepository) Enqueue(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.GetName(), err)
	}

	return r.Insert(ctx, outbox.Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  data,
	})
}

func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	_, err := r.Create(ctx, document.ToOutboxDocument(entry))
	return err
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]outbox.Entry, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	docs, err := r.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]outbox.Entry, len(docs))
	for i := range docs {
		entries[i] = docs[i].ToEntry()
	}

	return entries, nil
}

func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	return r.DeleteByID(ctx, id)
}
