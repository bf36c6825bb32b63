package document

import (
	"time"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItemDocument is embedded in its order, so order and items are written
// by a single insert.
type OrderItemDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	OrderID     primitive.ObjectID `bson:"order_id"`
	ProductID   primitive.ObjectID `bson:"product_id"`
	ProductName string             `bson:"product_name"`
	Quantity    int                `bson:"quantity"`
	UnitPrice   int64              `bson:"unit_price"`
}

type OrderDocument struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	CustomerID  primitive.ObjectID  `bson:"customer_id"`
	Items       []OrderItemDocument `bson:"items"`
	TotalAmount int64               `bson:"total_amount"`
	CreatedAt   time.Time           `bson:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at"`
}

func (doc OrderDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *OrderDocument) ToDomain() *domain.Order {
	items := make([]domain.OrderItem, len(doc.Items))
	for i, itemDoc := range doc.Items {
		items[i] = domain.OrderItem{
			ID:          domain.ID(itemDoc.ID.Hex()),
			OrderID:     domain.ID(itemDoc.OrderID.Hex()),
			ProductID:   domain.ID(itemDoc.ProductID.Hex()),
			ProductName: itemDoc.ProductName,
			Quantity:    itemDoc.Quantity,
			UnitPrice:   domain.Amount(itemDoc.UnitPrice),
		}
	}

	return &domain.Order{
		ID:          domain.ID(doc.ID.Hex()),
		CustomerID:  domain.ID(doc.CustomerID.Hex()),
		Items:       items,
		TotalAmount: domain.Amount(doc.TotalAmount),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// NewOrderDocument maps a new order, generating the order and item ObjectIDs.
// Product and customer ids must already be valid hex.
func NewOrderDocument(order *domain.Order) (*OrderDocument, error) {
	customerID, err := ParseID(string(order.CustomerID))
	if err != nil {
		return nil, err
	}

	doc := &OrderDocument{
		ID:          primitive.NewObjectID(),
		CustomerID:  customerID,
		Items:       make([]OrderItemDocument, len(order.Items)),
		TotalAmount: int64(order.TotalAmount),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}

	for i, item := range order.Items {
		productID, err := ParseID(string(item.ProductID))
		if err != nil {
			return nil, err
		}
		doc.Items[i] = OrderItemDocument{
			ID:          primitive.NewObjectID(),
			OrderID:     doc.ID,
			ProductID:   productID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   int64(item.UnitPrice),
		}
	}

	return doc, nil
}
