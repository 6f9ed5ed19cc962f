package locations

import "github.com/shopspring/decimal"

type CreateLocationRequest struct {
	Name                string           `json:"name" binding:"required"`
	Type                string           `json:"type" binding:"required"`
	Capacity            decimal.Decimal  `json:"capacity" binding:"required"`
	CurrentTemperature  *decimal.Decimal `json:"current_temperature"`
	IdealMinTemperature *decimal.Decimal `json:"ideal_min_temperature"`
	IdealMaxTemperature *decimal.Decimal `json:"ideal_max_temperature"`
}

type PatchLocationRequest struct {
	Name                *string          `json:"name"`
	Type                *string          `json:"type"`
	Capacity            *decimal.Decimal `json:"capacity"`
	CurrentTemperature  *decimal.Decimal `json:"current_temperature"`
	IdealMinTemperature *decimal.Decimal `json:"ideal_min_temperature"`
	IdealMaxTemperature *decimal.Decimal `json:"ideal_max_temperature"`
}
