package document

import (
	"time"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductDocument stores price in cents.
type ProductDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       int64              `bson:"price"`
	Stock       int                `bson:"stock"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	return &domain.Product{
		ID:          domain.ID(doc.ID.Hex()),
		Name:        doc.Name,
		Description: doc.Description,
		Price:       domain.Amount(doc.Price),
		Stock:       doc.Stock,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// ToProductDocument maps a product that has not been stored yet; the id is
// left for the server to assign.
func ToProductDocument(p *domain.Product) *ProductDocument {
	return &ProductDocument{
		Name:        p.Name,
		Description: p.Description,
		Price:       int64(p.Price),
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewStockUpdateModel sets the new stock only while the stored stock still
// equals the snapshot the update was computed from.
func NewStockUpdateModel(update domain.StockUpdate, now time.Time) (mongo.WriteModel, error) {
	objectID, err := ParseID(string(update.ProductID))
	if err != nil {
		return nil, err
	}

	return mongo.NewUpdateOneModel().
		SetFilter(bson.M{"_id": objectID, "stock": update.SnapshotStock}).
		SetUpdate(bson.M{"$set": bson.M{
			"stock":      update.Stock,
			"updated_at": now,
		}}), nil
}

// PriceUpdate is the $set payload for a catalog price change.
func PriceUpdate(price domain.Amount, now time.Time) bson.M {
	return bson.M{
		"price":      int64(price),
		"updated_at": now,
	}
}
