package store

import (
	"testing"

	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/shopspring/decimal"
)

func testLocation(capacity, current int64) *models.StorageLocation {
	return &models.StorageLocation{
		ID:              "loc-1",
		Name:            "fridge-1",
		Type:            metadata.StorageRefrigerator,
		Capacity:        decimal.NewFromInt(capacity),
		CurrentCapacity: decimal.NewFromInt(current),
	}
}

func TestApplyCapacityDeltaClamp(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		delta    int64
		expected int64
	}{
		{"normal increase", 20, 30, 50},
		{"normal decrease", 50, -30, 20},
		{"clamped at capacity", 90, 50, 100},
		{"clamped at zero", 10, -50, 0},
		{"exact fill", 0, 100, 100},
		{"exact drain", 100, -100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			location := testLocation(100, tt.current)
			if err := ApplyCapacityDelta(location, decimal.NewFromInt(tt.delta), metadata.PolicyClamp); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !location.CurrentCapacity.Equal(decimal.NewFromInt(tt.expected)) {
				t.Errorf("expected current capacity %d, got %s", tt.expected, location.CurrentCapacity)
			}
		})
	}
}

func TestApplyCapacityDeltaReject(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		delta   int64
		wantErr bool
	}{
		{"within bounds", 20, 30, false},
		{"exact fill", 0, 100, false},
		{"overflow", 90, 50, true},
		{"underflow", 10, -50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			location := testLocation(100, tt.current)
			err := ApplyCapacityDelta(location, decimal.NewFromInt(tt.delta), metadata.PolicyReject)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				if !location.CurrentCapacity.Equal(decimal.NewFromInt(tt.current)) {
					t.Errorf("capacity changed despite rejection: %s", location.CurrentCapacity)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
