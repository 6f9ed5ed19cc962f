package metadata

import (
	"testing"
)

func TestNewProductCategory(t *testing.T) {
	tests := []struct {
		input         string
		expectedError bool
	}{
		{"oyster", false},
		{"SEAFOOD", false},
		{"  wine ", false},
		{"fish", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewProductCategory(tt.input)
			if tt.expectedError && err == nil {
				t.Errorf("Expected error for input %s, but got none", tt.input)
			}
			if !tt.expectedError && err != nil {
				t.Errorf("Did not expect error for input %s, but got %v", tt.input, err)
			}
		})
	}
}

func TestNewUnit(t *testing.T) {
	tests := []struct {
		input         string
		expectedError bool
	}{
		{"kg", false},
		{"kilogram", false}, // Accepted alias, normalized to kg.
		{"DOZEN", false},
		{"pallet", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewUnit(tt.input)
			if tt.expectedError && err == nil {
				t.Errorf("Expected error for input %s, but got none", tt.input)
			}
			if !tt.expectedError && err != nil {
				t.Errorf("Did not expect error for input %s, but got %v", tt.input, err)
			}
		})
	}
}

func TestStorageTypeRequiresTemperature(t *testing.T) {
	tests := []struct {
		storageType StorageType
		expected    bool
	}{
		{StorageRefrigerator, true},
		{StorageFreezer, true},
		{StorageCellar, false},
		{StoragePool, false},
		{StorageTable, false},
		{StorageGeneric, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.storageType), func(t *testing.T) {
			if got := tt.storageType.RequiresTemperature(); got != tt.expected {
				t.Errorf("Expected %v for %s, got %v", tt.expected, tt.storageType, got)
			}
		})
	}
}

func TestNewMovementType(t *testing.T) {
	tests := []struct {
		input         string
		expectedError bool
	}{
		{"in", false},
		{"OUT", false},
		{"Transfer", false},
		{"adjust", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewMovementType(tt.input)
			if tt.expectedError && err == nil {
				t.Errorf("Expected error for input %s, but got none", tt.input)
			}
			if !tt.expectedError && err != nil {
				t.Errorf("Did not expect error for input %s, but got %v", tt.input, err)
			}
		})
	}
}

func TestNewCapacityPolicy(t *testing.T) {
	if policy, err := NewCapacityPolicy(""); err != nil || policy != PolicyClamp {
		t.Errorf("Expected empty value to default to clamp, got %s (%v)", policy, err)
	}
	if _, err := NewCapacityPolicy("reject"); err != nil {
		t.Errorf("Did not expect error for reject, got %v", err)
	}
	if _, err := NewCapacityPolicy("abort"); err == nil {
		t.Error("Expected error for unknown policy, but got none")
	}
}
