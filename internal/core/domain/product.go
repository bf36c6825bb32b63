package domain

import "time"

type Product struct {
	ID          ID
	Name        string
	Description string
	Price       Amount
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(name string, description string, price Amount, stock int) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// StockUpdate sets a product's stock to Stock, provided it still holds
// SnapshotStock, the value read when the order was validated.
type StockUpdate struct {
	ProductID     ID
	Stock         int
	SnapshotStock int
}
