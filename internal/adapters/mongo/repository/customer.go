package repository

import (
	"context"

	"github.com/rafaelleal24/orderplacement/internal/adapters/mongo/document"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/logger"
	"github.com/rafaelleal24/orderplacement/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CustomerRepository struct {
	*BaseRepository[document.CustomerDocument]
}

func NewCustomerRepository(db *mongo.Database) port.CustomerPort {
	repo := &CustomerRepository{
		BaseRepository: NewBaseRepository[document.CustomerDocument](db, "customers"),
	}

	err := repo.createIndexes(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "customers",
		})
	}

	return repo
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	objectID, err := r.BaseRepository.Create(ctx, document.ToCustomerDocument(customer))
	if err != nil {
		return err
	}

	customer.ID = domain.ID(objectID.Hex())
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Customer, error) {
	doc, err := r.BaseRepository.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}
