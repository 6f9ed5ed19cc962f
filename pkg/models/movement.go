package models

import (
	"time"

	"oysterfarm/pkg/metadata"

	"github.com/shopspring/decimal"
)

// StockMovement is one entry of the append-only movement journal, the sole
// audit trail of quantity changes. Entries are never mutated or deleted, the
// journal outlives the stock records it references. FromLocationID and
// ToLocationID are populated only for transfers.
type StockMovement struct {
	ID             string                `json:"id" db:"id"`
	StockID        string                `json:"stock_id" db:"stock_id"`
	ProductID      string                `json:"product_id" db:"product_id"`
	LocationID     string                `json:"location_id" db:"location_id"`
	Type           metadata.MovementType `json:"type" db:"type"`
	Quantity       decimal.Decimal       `json:"quantity" db:"quantity"`
	Unit           metadata.Unit         `json:"unit" db:"unit"`
	FromLocationID *string               `json:"from_location_id,omitempty" db:"from_location_id"`
	ToLocationID   *string               `json:"to_location_id,omitempty" db:"to_location_id"`
	Reason         *string               `json:"reason,omitempty" db:"reason"`
	PerformedBy    string                `json:"performed_by" db:"performed_by"`
	PerformedAt    time.Time             `json:"performed_at" db:"performed_at"`
	CreatedAt      time.Time             `json:"created_at" db:"created_at"`
}
