package models

import (
	"time"

	"oysterfarm/pkg/metadata"

	"github.com/shopspring/decimal"
)

// Product is catalog reference data. Category and unit changes do not rewrite
// the unit already recorded on existing Stock rows.
type Product struct {
	ID             string                   `json:"id" db:"id"`
	Name           string                   `json:"name" db:"name"`
	Category       metadata.ProductCategory `json:"category" db:"category"`
	Unit           metadata.Unit            `json:"unit" db:"unit"`
	AlertThreshold *decimal.Decimal         `json:"alert_threshold,omitempty" db:"alert_threshold"`
	CreatedAt      time.Time                `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at" db:"updated_at"`
}
