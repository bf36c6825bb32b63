package port

import (
	"context"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type CustomerPort interface {
	Create(ctx context.Context, customer *domain.Customer) error
	// FindByID returns a KindNotFound service error when no customer matches.
	FindByID(ctx context.Context, id domain.ID) (*domain.Customer, error)
}
