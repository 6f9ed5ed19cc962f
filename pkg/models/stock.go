package models

import (
	"time"

	"oysterfarm/pkg/metadata"

	"github.com/shopspring/decimal"
)

// Stock is a quantity of one product held at one storage location. Status is
// derived from quantity and expiry, never stored from caller input. Unit is
// fixed at creation time from the referenced product.
type Stock struct {
	ID          string               `json:"id" db:"id"`
	ProductID   string               `json:"product_id" db:"product_id"`
	LocationID  string               `json:"location_id" db:"location_id"`
	Quantity    decimal.Decimal      `json:"quantity" db:"quantity"`
	Unit        metadata.Unit        `json:"unit" db:"unit"`
	Status      metadata.StockStatus `json:"status" db:"status"`
	BatchNumber *string              `json:"batch_number,omitempty" db:"batch_number"`
	ArrivalDate time.Time            `json:"arrival_date" db:"arrival_date"`
	ExpiryDate  *time.Time           `json:"expiry_date,omitempty" db:"expiry_date"`
	Notes       *string              `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" db:"updated_at"`
}
