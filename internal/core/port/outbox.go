package port

import (
	"context"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type OutboxPort interface {
	Enqueue(ctx context.Context, event domain.Event) error
}
