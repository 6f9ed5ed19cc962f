package stocks

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddStockRequest struct {
	ProductID   string          `json:"product_id" binding:"required"`
	LocationID  string          `json:"location_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Unit        string          `json:"unit" binding:"required"`
	BatchNumber *string         `json:"batch_number"`
	ArrivalDate *time.Time      `json:"arrival_date"`
	ExpiryDate  *time.Time      `json:"expiry_date"`
	Notes       *string         `json:"notes"`
	PerformedBy string          `json:"performed_by"`
}

// PatchStockRequest deliberately has no status field, status is always derived
// on the server side.
type PatchStockRequest struct {
	Quantity    *decimal.Decimal `json:"quantity"`
	BatchNumber *string          `json:"batch_number"`
	ArrivalDate *time.Time       `json:"arrival_date"`
	ExpiryDate  *time.Time       `json:"expiry_date"`
	Notes       *string          `json:"notes"`
	PerformedBy string           `json:"performed_by"`
}

type TransferStockRequest struct {
	TargetLocationID string          `json:"target_location_id" binding:"required"`
	Quantity         decimal.Decimal `json:"quantity" binding:"required"`
	PerformedBy      string          `json:"performed_by"`
}
