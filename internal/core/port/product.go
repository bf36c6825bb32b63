package port

import (
	"context"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	// FindByIDs returns only the products that exist; it never fails on a
	// partial or empty match.
	FindByIDs(ctx context.Context, ids []domain.ID) ([]*domain.Product, error)
	UpdateStock(ctx context.Context, updates []domain.StockUpdate) error
	UpdatePrice(ctx context.Context, id domain.ID, price domain.Amount) error
}
