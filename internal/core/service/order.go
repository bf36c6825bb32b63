package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/dto"
	"github.com/rafaelleal24/orderplacement/internal/core/logger"
	"github.com/rafaelleal24/orderplacement/internal/core/port"
	"github.com/rafaelleal24/orderplacement/internal/core/serviceerrors"
)

const (
	ORDER_MAX_ITEMS      = 100
	ORDER_MAX_PAGE_LIMIT = 100
	orderCacheTTL        = 15 * time.Minute
)

type OrderService struct {
	orderRepository    port.OrderPort
	productRepository  port.ProductPort
	customerRepository port.CustomerPort
	outbox             port.OutboxPort
	orderCache         port.CachePort[domain.Order]
	txManager          port.TransactionManager
}

func NewOrderService(
	orderRepository port.OrderPort,
	productRepository port.ProductPort,
	customerRepository port.CustomerPort,
	outbox port.OutboxPort,
	orderCache port.CachePort[domain.Order],
	txManager port.TransactionManager,
) *OrderService {
	return &OrderService{
		orderRepository:    orderRepository,
		productRepository:  productRepository,
		customerRepository: customerRepository,
		outbox:             outbox,
		orderCache:         orderCache,
		txManager:          txManager,
	}
}

func (s *OrderService) getCacheKey(orderID domain.ID) string {
	return fmt.Sprintf("order:%s", orderID)
}

// PlaceOrder validates the customer, the requested products and their stock,
// then creates the order and decrements stock in a single transaction.
// Validation failures happen before any write.
func (s *OrderService) PlaceOrder(ctx context.Context, request *dto.PlaceOrderRequest) (*domain.Order, error) {
	customerID := request.CustomerID.Canonical()
	lines := request.Lines()
	if err := validateLines(lines); err != nil {
		return nil, err
	}

	if err := s.ensureCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx, lines)
	if err != nil {
		return nil, err
	}

	if shortages := catalog.Shortages(lines); len(shortages) > 0 {
		return nil, newInsufficientStockError(shortages)
	}

	var order *domain.Order
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		// Rebuilt on every attempt because the store assigns IDs in place.
		order = domain.NewOrder(customerID, catalog.PriceItems(lines))

		if err := s.orderRepository.Create(txCtx, order); err != nil {
			return err
		}
		if err := s.productRepository.UpdateStock(txCtx, catalog.StockUpdates(order.Items)); err != nil {
			return err
		}
		return s.outbox.Enqueue(txCtx, domain.NewOrderPlacedEvent(order))
	})
	if err != nil {
		logger.Error(ctx, "transaction: place order failed", err, map[string]any{
			"customer_id": customerID,
		})
		return nil, err
	}

	if err := s.orderCache.Set(ctx, s.getCacheKey(order.ID), order, orderCacheTTL); err != nil {
		logger.Error(ctx, "cache: set order failed", err, map[string]any{
			"order_id": order.ID,
		})
	}

	logger.Info(ctx, "Order placed successfully", map[string]any{
		"order_id":     order.ID,
		"customer_id":  order.CustomerID,
		"items":        len(order.Items),
		"total_amount": int(order.TotalAmount),
	})
	return order, nil
}

func validateLines(lines []domain.OrderLine) error {
	if len(lines) == 0 {
		return serviceerrors.NewInvalidRequestError("order must contain at least one item")
	}
	if len(lines) > ORDER_MAX_ITEMS {
		return serviceerrors.NewUnprocessableEntityError("order items limit exceeded")
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return serviceerrors.NewInvalidRequestError(fmt.Sprintf("invalid quantity %d for product %s", line.Quantity, line.ProductID))
		}
	}
	return nil
}

func (s *OrderService) ensureCustomer(ctx context.Context, customerID domain.ID) error {
	_, err := s.customerRepository.FindByID(ctx, customerID)
	if err == nil {
		return nil
	}
	// a malformed id cannot match any stored customer
	if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) || serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
		return newCustomerNotFoundError(customerID)
	}
	logger.Error(ctx, "customer: find failed", err, map[string]any{
		"customer_id": customerID,
	})
	return err
}

func (s *OrderService) loadCatalog(ctx context.Context, lines []domain.OrderLine) (*domain.Catalog, error) {
	ids := domain.UniqueProductIDs(lines)

	products, err := s.productRepository.FindByIDs(ctx, ids)
	if err != nil {
		logger.Error(ctx, "product: find by ids failed", err, map[string]any{
			"product_ids": len(ids),
		})
		return nil, err
	}

	catalog := domain.NewCatalog(products)
	if catalog.Len() == 0 {
		return nil, newNoProductsFoundError()
	}
	if missing := catalog.Missing(ids); len(missing) > 0 {
		return nil, newProductsNotFoundError(missing)
	}
	return catalog, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID domain.ID) (*domain.Order, error) {
	orderID = orderID.Canonical()
	cached, err := s.orderCache.Get(ctx, s.getCacheKey(orderID))
	if err != nil {
		logger.Error(ctx, "cache: get order failed", err, map[string]any{
			"order_id": orderID,
		})
	}
	if cached != nil {
		logger.Debug(ctx, "order found in cache", map[string]any{
			"order_id": orderID,
		})
		return cached, nil
	}

	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderCache.Set(ctx, s.getCacheKey(orderID), order, orderCacheTTL); err != nil {
		logger.Error(ctx, "cache: set order failed", err, map[string]any{
			"order_id": orderID,
		})
	}

	return order, nil
}

func (s *OrderService) GetOrdersByCustomer(ctx context.Context, customerID domain.ID, limit, offset int64) ([]*domain.Order, error) {
	if limit <= 0 || limit > ORDER_MAX_PAGE_LIMIT {
		return nil, serviceerrors.NewInvalidRequestError(fmt.Sprintf("limit must be between 1 and %d", ORDER_MAX_PAGE_LIMIT))
	}
	if offset < 0 {
		return nil, serviceerrors.NewInvalidRequestError("offset must not be negative")
	}

	if err := s.ensureCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	return s.orderRepository.GetByCustomerID(ctx, customerID, limit, offset)
}
