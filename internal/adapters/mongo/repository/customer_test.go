package repository_test

import (
	"context"
	"testing"

	"github.com/rafaelleal24/orderplacement/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/serviceerrors"
)

func TestCustomerRepository_Create(t *testing.T) {
	repo := repository.NewCustomerRepository(newTestDatabase(t, "test_customer_create"))
	ctx := context.Background()

	t.Run("creates customer and assigns ID", func(t *testing.T) {
		customer := domain.NewCustomer("Ada", "ada@example.com")

		if err := repo.Create(ctx, customer); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(string(customer.ID)) != 24 {
			t.Fatalf("expected 24-char hex ID, got %q (len=%d)", customer.ID, len(string(customer.ID)))
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		customer := domain.NewCustomer("Ada Again", "ada@example.com")

		err := repo.Create(ctx, customer)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected KindConflict, got %v", err)
		}
	})
}

func TestCustomerRepository_FindByID(t *testing.T) {
	repo := repository.NewCustomerRepository(testDB)
	ctx := context.Background()

	t.Run("returns existing customer", func(t *testing.T) {
		created := domain.NewCustomer("Grace", "grace@example.com")
		if err := repo.Create(ctx, created); err != nil {
			t.Fatalf("setup: create failed: %v", err)
		}

		found, err := repo.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.ID != created.ID {
			t.Fatalf("expected id %s, got %s", created.ID, found.ID)
		}
		if found.Email != created.Email {
			t.Fatalf("expected email %q, got %q", created.Email, found.Email)
		}
	})

	t.Run("returns not found for non-existing customer", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "aabbccddee112233aabbccdd")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("returns error for invalid ID format", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "invalid-id")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}
