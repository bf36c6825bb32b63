package service

import (
	"fmt"
	"strings"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/serviceerrors"
)

func newCustomerNotFoundError(id domain.ID) error {
	return serviceerrors.
		NewNotFoundError(fmt.Sprintf("there is no customer with id %s", id)).
		WithCode(serviceerrors.CodeCustomerNotFound)
}

func newNoProductsFoundError() error {
	return serviceerrors.
		NewNotFoundError("could not find any products with the given ids").
		WithCode(serviceerrors.CodeNoProductsFound)
}

func newProductsNotFoundError(missing []domain.ID) error {
	ids := make([]string, len(missing))
	for i, id := range missing {
		ids[i] = string(id)
	}
	return serviceerrors.
		NewNotFoundError("could not find products with ids: " + strings.Join(ids, ", ")).
		WithCode(serviceerrors.CodeProductsNotFound)
}

func newInsufficientStockError(shortages []domain.StockShortage) error {
	parts := make([]string, len(shortages))
	for i, s := range shortages {
		parts[i] = fmt.Sprintf("%s (requested %d, available %d)", s.ProductID, s.Requested, s.Available)
	}
	return serviceerrors.
		NewUnprocessableEntityError("insufficient stock for products: " + strings.Join(parts, ", ")).
		WithCode(serviceerrors.CodeInsufficientStock)
}
