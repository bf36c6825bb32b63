package document

import (
	"time"

	"github.com/rafaelleal24/orderplacement/internal/adapters/outbox"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OutboxDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EventName  string             `bson:"event_name"`
	EntityName string             `bson:"entity_name"`
	EventData  string             `bson:"event_data"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (doc OutboxDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *OutboxDocument) ToEntry() outbox.Entry {
	return outbox.Entry{
		ID:         doc.ID.Hex(),
		EventName:  doc.EventName,
		EntityName: doc.EntityName,
		EventData:  []byte(doc.EventData),
	}
}

func ToOutboxDocument(entry outbox.Entry) *OutboxDocument {
	return &OutboxDocument{
		EventName:  entry.EventName,
		EntityName: entry.EntityName,
		EventData:  string(entry.EventData),
		CreatedAt:  time.Now(),
	}
}
