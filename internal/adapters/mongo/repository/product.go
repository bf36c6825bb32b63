package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/orderplacement/internal/adapters/mongo/document"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/port"
	"github.com/rafaelleal24/orderplacement/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	objectID, err := r.BaseRepository.Create(ctx, document.ToProductDocument(product))
	if err != nil {
		return err
	}

	product.ID = domain.ID(objectID.Hex())
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	docs, err := r.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	return toProducts(docs), nil
}

// FindByIDs returns the products matching ids. Ids that are not valid
// ObjectIDs cannot match and are skipped.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []domain.ID) ([]*domain.Product, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := document.ParseID(string(id))
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return []*domain.Product{}, nil
	}

	docs, err := r.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, err
	}

	return toProducts(docs), nil
}

// UpdateStock writes every update in one bulk write. Each update only applies
// while the stored stock still equals the snapshot it was computed from;
// otherwise a stock conflict is returned and the caller's transaction must
// be aborted.
func (r *ProductRepository) UpdateStock(ctx context.Context, updates []domain.StockUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	now := time.Now()
	models := make([]mongo.WriteModel, len(updates))
	for i, update := range updates {
		model, err := document.NewStockUpdateModel(update, now)
		if err != nil {
			return parseError(err)
		}
		models[i] = model
	}

	result, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return parseError(err)
	}

	if result.MatchedCount != int64(len(updates)) {
		return serviceerrors.
			NewConflictError(fmt.Sprintf("stock changed concurrently for %d of %d products", int64(len(updates))-result.MatchedCount, len(updates))).
			WithCode(serviceerrors.CodeStockConflict)
	}

	return nil
}

func (r *ProductRepository) UpdatePrice(ctx context.Context, id domain.ID, price domain.Amount) error {
	return r.Update(ctx, string(id), document.PriceUpdate(price, time.Now()))
}

func toProducts(docs []document.ProductDocument) []*domain.Product {
	products := make([]*domain.Product, len(docs))
	for i := range docs {
		products[i] = docs[i].ToDomain()
	}
	return products
}
