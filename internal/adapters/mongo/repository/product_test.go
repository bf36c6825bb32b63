package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rafaelleal24/orderplacement/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/port"
	"github.com/rafaelleal24/orderplacement/internal/core/serviceerrors"
)

func createTestProduct(t *testing.T, repo port.ProductPort, stock int) *domain.Product {
	t.Helper()
	product := domain.NewProduct("Test Product", "A test description", domain.NewAmountFromCents(2999), stock)
	if err := repo.Create(context.Background(), product); err != nil {
		t.Fatalf("setup: create product failed: %v", err)
	}
	return product
}

func TestProductRepository_Create(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("creates product and assigns ID", func(t *testing.T) {
		product := domain.NewProduct("Widget", "A widget", domain.NewAmountFromCents(1500), 100)

		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(string(product.ID)) != 24 {
			t.Fatalf("expected 24-char hex ID, got %q", product.ID)
		}
	})
}

func TestProductRepository_GetByID(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("returns product by ID", func(t *testing.T) {
		created := createTestProduct(t, repo, 50)

		found, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.Name != created.Name {
			t.Fatalf("expected name %q, got %q", created.Name, found.Name)
		}
		if found.Price != created.Price {
			t.Fatalf("expected price %d, got %d", created.Price, found.Price)
		}
		if found.Stock != created.Stock {
			t.Fatalf("expected stock %d, got %d", created.Stock, found.Stock)
		}
	})

	t.Run("returns not found for non-existing ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "aabbccddee112233aabbccdd")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("returns error for invalid ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "bad-id")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestProductRepository_GetAll(t *testing.T) {
	repo := repository.NewProductRepository(newTestDatabase(t, "test_product_getall"))
	ctx := context.Background()

	t.Run("returns empty list when no products", func(t *testing.T) {
		products, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected 0 products, got %d", len(products))
		}
	})

	t.Run("returns all created products", func(t *testing.T) {
		_ = repo.Create(ctx, domain.NewProduct("Product 1", "Desc 1", domain.NewAmountFromCents(1000), 10))
		_ = repo.Create(ctx, domain.NewProduct("Product 2", "Desc 2", domain.NewAmountFromCents(2000), 20))

		products, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
	})
}

func TestProductRepository_FindByIDs(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()
	p1 := createTestProduct(t, repo, 5)
	p2 := createTestProduct(t, repo, 5)

	t.Run("returns only matching products", func(t *testing.T) {
		products, err := repo.FindByIDs(ctx, []domain.ID{p1.ID, p2.ID, "aabbccddee112233aabb0000"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
	})

	t.Run("malformed ids never match", func(t *testing.T) {
		products, err := repo.FindByIDs(ctx, []domain.ID{"bad-id", p1.ID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 1 || products[0].ID != p1.ID {
			t.Fatalf("expected only %s, got %v", p1.ID, products)
		}
	})

	t.Run("uppercase hex matches and reports the lowercase id", func(t *testing.T) {
		upper := domain.ID(strings.ToUpper(string(p1.ID)))
		products, err := repo.FindByIDs(ctx, []domain.ID{upper})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 1 || products[0].ID != upper.Canonical() {
			t.Fatalf("expected %s, got %v", upper.Canonical(), products)
		}
	})

	t.Run("returns empty list when nothing matches", func(t *testing.T) {
		products, err := repo.FindByIDs(ctx, []domain.ID{"bad-id"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected 0 products, got %d", len(products))
		}
	})
}

func TestProductRepository_UpdateStock(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("applies every update", func(t *testing.T) {
		p1 := createTestProduct(t, repo, 50)
		p2 := createTestProduct(t, repo, 20)

		err := repo.UpdateStock(ctx, []domain.StockUpdate{
			{ProductID: p1.ID, Stock: 48, SnapshotStock: 50},
			{ProductID: p2.ID, Stock: 17, SnapshotStock: 20},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for id, want := range map[domain.ID]int{p1.ID: 48, p2.ID: 17} {
			got, _ := repo.GetByID(ctx, id)
			if got.Stock != want {
				t.Fatalf("product %s: expected stock %d, got %d", id, want, got.Stock)
			}
		}
	})

	t.Run("stale snapshot is a stock conflict", func(t *testing.T) {
		product := createTestProduct(t, repo, 10)

		err := repo.UpdateStock(ctx, []domain.StockUpdate{
			{ProductID: product.ID, Stock: 5, SnapshotStock: 12},
		})
		if !serviceerrors.HasCode(err, serviceerrors.CodeStockConflict) {
			t.Fatalf("expected STOCK_CONFLICT, got %v", err)
		}

		unchanged, _ := repo.GetByID(ctx, product.ID)
		if unchanged.Stock != 10 {
			t.Fatalf("expected stock 10 (unchanged), got %d", unchanged.Stock)
		}
	})

	t.Run("empty update list is a no-op", func(t *testing.T) {
		if err := repo.UpdateStock(ctx, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("fails for invalid ID", func(t *testing.T) {
		err := repo.UpdateStock(ctx, []domain.StockUpdate{{ProductID: "bad-id", Stock: 1, SnapshotStock: 2}})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestProductRepository_UpdatePrice(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("updates price", func(t *testing.T) {
		product := createTestProduct(t, repo, 1)

		if err := repo.UpdatePrice(ctx, product.ID, domain.NewAmountFromCents(1990)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		updated, _ := repo.GetByID(ctx, product.ID)
		if updated.Price != domain.NewAmountFromCents(1990) {
			t.Fatalf("expected price 1990, got %d", updated.Price)
		}
	})

	t.Run("returns not found for non-existing product", func(t *testing.T) {
		err := repo.UpdatePrice(ctx, "aabbccddee112233aabb0000", domain.NewAmountFromCents(1))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}
