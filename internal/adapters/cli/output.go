package cli

import (
	"encoding/json"
	"io"
	"time"

	"github.com/rafaelleal24/orderplacement/internal/core/domain"
)

type customerView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type productView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
}

type orderItemView struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

type orderView struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Items       []orderItemView `json:"items"`
	TotalAmount string          `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newCustomerView(c *domain.Customer) customerView {
	return customerView{ID: string(c.ID), Name: c.Name, Email: c.Email, CreatedAt: c.CreatedAt}
}

func newProductView(p *domain.Product) productView {
	return productView{
		ID:          string(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Decimal().StringFixed(2),
		Stock:       p.Stock,
	}
}

func newOrderView(o *domain.Order) orderView {
	items := make([]orderItemView, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemView{
			ProductID:   string(item.ProductID),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.Decimal().StringFixed(2),
		}
	}
	return orderView{
		ID:          string(o.ID),
		CustomerID:  string(o.CustomerID),
		Items:       items,
		TotalAmount: o.TotalAmount.Decimal().StringFixed(2),
		CreatedAt:   o.CreatedAt,
	}
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
