package domain

import "time"

type Order struct {
	ID          ID
	CustomerID  ID
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
	TotalAmount Amount
}

// OrderItem is a line of an order. UnitPrice is the catalog price captured
// when the order was placed and is never recomputed.
type OrderItem struct {
	ID          ID
	OrderID     ID
	ProductID   ID
	ProductName string
	Quantity    int
	UnitPrice   Amount
}

func (o *OrderItem) CalculateTotalAmount() Amount {
	return o.UnitPrice.Multiply(o.Quantity)
}

func NewOrderItem(productID ID, productName string, quantity int, unitPrice Amount) *OrderItem {
	return &OrderItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
}

func CalculateTotalAmount(items []OrderItem) Amount {
	totalAmount := Amount(0)
	for _, item := range items {
		totalAmount = totalAmount.Add(item.UnitPrice.Multiply(item.Quantity))
	}
	return totalAmount
}

func NewOrder(customerID ID, items []OrderItem) *Order {
	now := time.Now()
	return &Order{
		CustomerID:  customerID,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
		TotalAmount: CalculateTotalAmount(items),
	}
}

type OrderPlacedItem struct {
	ProductID ID     `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice Amount `json:"unit_price"`
}

type OrderPlacedEvent struct {
	OrderID     ID                `json:"order_id"`
	CustomerID  ID                `json:"customer_id"`
	Items       []OrderPlacedItem `json:"items"`
	TotalAmount Amount            `json:"total_amount"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (e *OrderPlacedEvent) GetName() string {
	return "order.placed"
}

func (e *OrderPlacedEvent) GetEntityName() string {
	return "order"
}

func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	items := make([]OrderPlacedItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderPlacedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return &OrderPlacedEvent{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Items:       items,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
}
