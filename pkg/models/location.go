package models

import (
	"time"

	"oysterfarm/pkg/metadata"

	"github.com/shopspring/decimal"
)

// StorageLocation holds total and currently-used capacity. CurrentCapacity is
// mutated only through the location store's AdjustCapacity and always satisfies
// 0 <= CurrentCapacity <= Capacity. Temperatures are meaningful only for
// refrigerator and freezer types.
type StorageLocation struct {
	ID                  string               `json:"id" db:"id"`
	Name                string               `json:"name" db:"name"`
	Type                metadata.StorageType `json:"type" db:"type"`
	Capacity            decimal.Decimal      `json:"capacity" db:"capacity"`
	CurrentCapacity     decimal.Decimal      `json:"current_capacity" db:"current_capacity"`
	CurrentTemperature  *decimal.Decimal     `json:"current_temperature,omitempty" db:"current_temperature"`
	IdealMinTemperature *decimal.Decimal     `json:"ideal_min_temperature,omitempty" db:"ideal_min_temperature"`
	IdealMaxTemperature *decimal.Decimal     `json:"ideal_max_temperature,omitempty" db:"ideal_max_temperature"`
	CreatedAt           time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at" db:"updated_at"`
}
