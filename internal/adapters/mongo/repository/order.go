package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rafaelleal24/orderplacement/internal/adapters/mongo/document"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/logger"
	"github.com/rafaelleal24/orderplacement/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	*BaseRepository[document.OrderDocument]
}

func NewOrderRepository(db *mongo.Database) port.OrderPort {
	repo := &OrderRepository{
		BaseRepository: NewBaseRepository[document.OrderDocument](db, "orders"),
	}

	err := repo.createIndexes(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "customer_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	})
	if err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "orders",
		})
	}

	return repo
}

// Create stores the order with its items in one document and assigns the
// generated ids and timestamps back onto order.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order.ID != "" {
		return errors.New("cannot create order with existing ID")
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	doc, err := document.NewOrderDocument(order)
	if err != nil {
		return parseError(err)
	}

	if _, err := r.BaseRepository.Create(ctx, doc); err != nil {
		return err
	}

	order.ID = domain.ID(doc.ID.Hex())
	for i := range order.Items {
		order.Items[i].ID = domain.ID(doc.Items[i].ID.Hex())
		order.Items[i].OrderID = order.ID
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Order, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *OrderRepository) GetByCustomerID(ctx context.Context, customerID domain.ID, limit, offset int64) ([]*domain.Order, error) {
	objectID, err := document.ParseID(string(customerID))
	if err != nil {
		return nil, parseError(err)
	}

	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	docs, err := r.Find(ctx, bson.M{"customer_id": objectID}, opts)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(docs))
	for i := range docs {
		orders[i] = docs[i].ToDomain()
	}

	return orders, nil
}
