package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"29.99"`
	Stock       int             `json:"stock" binding:"gte=0"`
}

type UpdateProductPriceRequest struct {
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"19.90"`
}
