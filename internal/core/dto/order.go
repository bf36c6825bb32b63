package dto

import "github.com/rafaelleal24/orderplacement/internal/core/domain"

type OrderItem struct {
	ProductID domain.ID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

type PlaceOrderRequest struct {
	CustomerID domain.ID   `json:"customer_id" binding:"required"`
	Items      []OrderItem `json:"items" binding:"required,min=1,dive"`
}

func (r *PlaceOrderRequest) Lines() []domain.OrderLine {
	lines := make([]domain.OrderLine, len(r.Items))
	for i, item := range r.Items {
		lines[i] = domain.OrderLine{ProductID: item.ProductID.Canonical(), Quantity: item.Quantity}
	}
	return lines
}
