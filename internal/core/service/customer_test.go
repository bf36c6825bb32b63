package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/dto"
	"github.com/rafaelleal24/orderplacement/internal/core/port/mock"
	"github.com/rafaelleal24/orderplacement/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

func setupCustomerService(t *testing.T) (*CustomerService, *mock.MockCustomerPort) {
	ctrl := gomock.NewController(t)
	customerRepo := mock.NewMockCustomerPort(ctrl)
	svc := NewCustomerService(customerRepo)
	return svc, customerRepo
}

func TestCustomerService_Create(t *testing.T) {
	req := &dto.CreateCustomerRequest{Name: "Ada", Email: "ada@example.com"}

	t.Run("success", func(t *testing.T) {
		svc, customerRepo := setupCustomerService(t)
		expectedID := domain.ID("aabbccddee112233aabbccdd")

		customerRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Customer) error {
				c.ID = expectedID
				return nil
			})

		customer, err := svc.Create(context.Background(), req)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if customer.ID != expectedID {
			t.Fatalf("expected id %s, got %s", expectedID, customer.ID)
		}
		if customer.Email != req.Email {
			t.Fatalf("expected email %q, got %q", req.Email, customer.Email)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, customerRepo := setupCustomerService(t)

		customerRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(serviceerrors.NewConflictError("entity already exists"))

		_, err := svc.Create(context.Background(), req)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected KindConflict, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		svc, customerRepo := setupCustomerService(t)
		repoErr := errors.New("db connection failed")

		customerRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(repoErr)

		_, err := svc.Create(context.Background(), req)
		if !errors.Is(err, repoErr) {
			t.Fatalf("expected %v, got %v", repoErr, err)
		}
	})
}

func TestCustomerService_GetByID(t *testing.T) {
	customerID := domain.ID("aabbccddee112233aabbccdd")

	t.Run("found", func(t *testing.T) {
		svc, customerRepo := setupCustomerService(t)

		customerRepo.EXPECT().
			FindByID(gomock.Any(), customerID).
			Return(&domain.Customer{ID: customerID, Name: "Ada"}, nil)

		customer, err := svc.GetByID(context.Background(), customerID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if customer.Name != "Ada" {
			t.Fatalf("expected name Ada, got %q", customer.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, customerRepo := setupCustomerService(t)

		customerRepo.EXPECT().
			FindByID(gomock.Any(), customerID).
			Return(nil, serviceerrors.NewNotFoundError("entity not found"))

		_, err := svc.GetByID(context.Background(), customerID)
		if !serviceerrors.HasCode(err, serviceerrors.CodeCustomerNotFound) {
			t.Fatalf("expected CUSTOMER_NOT_FOUND, got %v", err)
		}
	})
}
