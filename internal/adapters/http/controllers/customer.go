package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/orderplacement/internal/adapters/http/handlers"
	"github.com/rafaelleal24/orderplacement/internal/core/domain"
	"github.com/rafaelleal24/orderplacement/internal/core/dto"
	"github.com/rafaelleal24/orderplacement/internal/core/service"
	"github.com/rafaelleal24/orderplacement/internal/core/serviceerrors"
)

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        string(customer.ID),
		Name:      customer.Name,
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
	}
}

type CustomerController struct {
	customerService *service.CustomerService
}

func NewCustomerController(customerService *service.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

// CreateCustomer godoc
// @Summary     Create a customer
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateCustomerRequest true "Customer data"
// @Success     201     {object} CustomerResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/customers [post]
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var request dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	customer, err := cc.customerService.Create(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCustomerResponse(customer))
}

// GetCustomer godoc
// @Summary     Get customer by ID
// @Tags        customers
// @Produce     json
// @Param       id  path     string true "Customer ID"
// @Success     200 {object} CustomerResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/customers/{id} [get]
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customerID := c.Param("id")
	if !domain.ValidateID(customerID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid customer ID"))
		return
	}
	customer, err := cc.customerService.GetByID(c.Request.Context(), domain.ID(customerID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCustomerResponse(customer))
}
