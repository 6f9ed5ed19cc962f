package metadata

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockStatus string

const (
	StatusAvailable StockStatus = "available"
	StatusLow       StockStatus = "low"
	// StatusCritical is never produced by DeriveStockStatus. It can only be set
	// through a manual override and the next recompute replaces it.
	StatusCritical StockStatus = "critical"
	StatusExpired  StockStatus = "expired"
)

func (s StockStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusLow, StatusCritical, StatusExpired:
		return true
	default:
		return false
	}
}

func (s StockStatus) String() string {
	return string(s)
}

// DeriveStockStatus computes the status of a stock record from its quantity and
// expiry. Precedence: expired wins over low, low wins over available. The status
// is never trusted from caller input, every quantity or expiry change goes
// through this function again.
func DeriveStockStatus(quantity decimal.Decimal, alertThreshold *decimal.Decimal, expiryDate *time.Time, now time.Time) StockStatus {
	if expiryDate != nil && !expiryDate.After(now) {
		return StatusExpired
	}
	if alertThreshold != nil && quantity.LessThanOrEqual(*alertThreshold) {
		return StatusLow
	}
	return StatusAvailable
}
