package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/orderplacement/internal/adapters/http/handlers"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/dto"
	"github.com/rafaelleal24/orderplacement/internal/core/service"
	"github.com/rafaelleal24/orderplacement/internal/core/serviceerrors"
)

const defaultPageLimit = 20

type OrderController struct {
	orderService *service.OrderService
}

type OrderItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price" example:"10.00"`
	Subtotal    string `json:"subtotal" example:"20.00"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customer_id"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount string              `json:"total_amount" example:"35.00"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func NewOrderItemResponse(item domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:          string(item.ID),
		ProductID:   string(item.ProductID),
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   formatAmount(item.UnitPrice),
		Subtotal:    formatAmount(item.CalculateTotalAmount()),
	}
}

func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = NewOrderItemResponse(item)
	}
	return OrderResponse{
		ID:          string(order.ID),
		CustomerID:  string(order.CustomerID),
		Items:       items,
		TotalAmount: formatAmount(order.TotalAmount),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// PlaceOrder godoc
// @Summary     Place an order
// @Description Validates customer, products and stock, then creates the order and decrements stock atomically
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body     dto.PlaceOrderRequest true "Order data"
// @Success     201     {object} OrderResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse "CUSTOMER_NOT_FOUND, NO_PRODUCTS_FOUND or PRODUCTS_NOT_FOUND"
// @Failure     409     {object} handlers.ErrorResponse "STOCK_CONFLICT"
// @Failure     422     {object} handlers.ErrorResponse "INSUFFICIENT_STOCK"
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/orders [post]
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var request dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	order, err := oc.orderService.PlaceOrder(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewOrderResponse(order))
}

// GetOrderByID godoc
// @Summary     Get order by ID
// @Tags        orders
// @Produce     json
// @Param       id  path     string true "Order ID"
// @Success     200 {object} OrderResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/orders/{id} [get]
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID := c.Param("id")
	if !domain.ValidateID(orderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid order ID"))
		return
	}
	order, err := oc.orderService.GetOrderByID(c.Request.Context(), domain.ID(orderID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}

// GetCustomerOrders godoc
// @Summary     List a customer's orders
// @Description Newest first
// @Tags        orders
// @Produce     json
// @Param       id     path     string true  "Customer ID"
// @Param       limit  query    int    false "Page size (1-100)" default(20)
// @Param       offset query    int    false "Orders to skip"    default(0)
// @Success     200    {array}  OrderResponse
// @Failure     400    {object} handlers.ErrorResponse
// @Failure     404    {object} handlers.ErrorResponse
// @Router      /api/v1/customers/{id}/orders [get]
func (oc *OrderController) GetCustomerOrders(c *gin.Context) {
	customerID := c.Param("id")
	if !domain.ValidateID(customerID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid customer ID"))
		return
	}

	limit, err := queryInt(c, "limit", defaultPageLimit)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	orders, err := oc.orderService.GetOrdersByCustomer(c.Request.Context(), domain.ID(customerID), limit, offset)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = NewOrderResponse(order)
	}
	c.JSON(http.StatusOK, response)
}

func queryInt(c *gin.Context, name string, fallback int64) (int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, serviceerrors.NewInvalidRequestError("invalid " + name)
	}
	return value, nil
}
