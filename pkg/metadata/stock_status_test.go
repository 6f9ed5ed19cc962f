package metadata

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDeriveStockStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(48 * time.Hour)
	threshold := decimal.NewFromInt(5)

	tests := []struct {
		name      string
		quantity  decimal.Decimal
		threshold *decimal.Decimal
		expiry    *time.Time
		expected  StockStatus
	}{
		{"no expiry, no threshold", decimal.NewFromInt(10), nil, nil, StatusAvailable},
		{"quantity above threshold", decimal.NewFromInt(10), &threshold, nil, StatusAvailable},
		{"quantity equal to threshold", decimal.NewFromInt(5), &threshold, nil, StatusLow},
		{"quantity below threshold", decimal.NewFromInt(4), &threshold, nil, StatusLow},
		{"zero quantity without threshold", decimal.Zero, nil, nil, StatusAvailable},
		{"expired beats available", decimal.NewFromInt(100), nil, &past, StatusExpired},
		{"expired beats low", decimal.NewFromInt(1), &threshold, &past, StatusExpired},
		{"expiry exactly now is expired", decimal.NewFromInt(1), nil, &now, StatusExpired},
		{"future expiry stays available", decimal.NewFromInt(10), &threshold, &future, StatusAvailable},
		{"future expiry with low quantity", decimal.NewFromInt(2), &threshold, &future, StatusLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status := DeriveStockStatus(tt.quantity, tt.threshold, tt.expiry, now); status != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, status)
			}
		})
	}
}

func TestDeriveStockStatusNeverCritical(t *testing.T) {
	now := time.Now()
	threshold := decimal.Zero

	for _, quantity := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1), decimal.NewFromFloat(0.001)} {
		if status := DeriveStockStatus(quantity, &threshold, nil, now); status == StatusCritical {
			t.Errorf("Derivation produced critical for quantity %s", quantity)
		}
	}
}
