package service

import (
	"context"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/dto"
	"github.com/rafaelleal24/orderplacement/internal/core/logger"
	"github.com/rafaelleal24/orderplacement/internal/core/port"
	"github.com/rafaelleal24/orderplacement/internal/core/serviceerrors"
)

type CustomerService struct {
	customerRepository port.CustomerPort
}

func NewCustomerService(customerRepository port.CustomerPort) *CustomerService {
	return &CustomerService{customerRepository: customerRepository}
}

func (s *CustomerService) Create(ctx context.Context, request *dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.NewCustomer(request.Name, request.Email)
	if err := s.customerRepository.Create(ctx, customer); err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			return nil, serviceerrors.NewConflictError("a customer with this email already exists")
		}
		logger.Error(ctx, "customer: create failed", err, nil)
		return nil, err
	}

	logger.Info(ctx, "Customer created", map[string]any{"customer_id": customer.ID})
	return customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id domain.ID) (*domain.Customer, error) {
	customer, err := s.customerRepository.FindByID(ctx, id)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, newCustomerNotFoundError(id)
		}
		return nil, err
	}
	return customer, nil
}
