package products

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name           string           `json:"name" binding:"required"`
	Category       string           `json:"category" binding:"required"`
	Unit           string           `json:"unit" binding:"required"`
	AlertThreshold *decimal.Decimal `json:"alert_threshold"`
}

type PatchProductRequest struct {
	Name           *string          `json:"name"`
	Category       *string          `json:"category"`
	Unit           *string          `json:"unit"`
	AlertThreshold *decimal.Decimal `json:"alert_threshold"`
}
