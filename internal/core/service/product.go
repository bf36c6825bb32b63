package service

import (
	"context"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/dto"
	"github.com/rafaelleal24/orderplacement/internal/core/logger"
	"github.com/rafaelleal24/orderplacement/internal/core/port"
	"github.com/rafaelleal24/orderplacement/internal/core/serviceerrors"
)

type ProductService struct {
	productRepository port.ProductPort
}

func NewProductService(productRepository port.ProductPort) *ProductService {
	return &ProductService{productRepository: productRepository}
}

func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	price := domain.NewAmountFromDecimal(request.Price)
	if price.IsNegative() {
		return nil, serviceerrors.NewInvalidRequestError("price must not be negative")
	}
	if request.Stock < 0 {
		return nil, serviceerrors.NewInvalidRequestError("stock must not be negative")
	}

	product := domain.NewProduct(request.Name, request.Description, price, request.Stock)

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name":  request.Name,
			"price": int(price),
			"stock": request.Stock,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	return s.productRepository.GetByID(ctx, id)
}

func (s *ProductService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepository.GetAll(ctx)
}

// UpdatePrice changes the catalog price. Items of orders already placed keep
// the price they were created with.
func (s *ProductService) UpdatePrice(ctx context.Context, id domain.ID, request *dto.UpdateProductPriceRequest) (*domain.Product, error) {
	price := domain.NewAmountFromDecimal(request.Price)
	if price.IsNegative() {
		return nil, serviceerrors.NewInvalidRequestError("price must not be negative")
	}

	if err := s.productRepository.UpdatePrice(ctx, id, price); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Product price updated", map[string]any{
		"product_id": id,
		"price":      int(price),
	})
	return s.productRepository.GetByID(ctx, id)
}
