package metadata

import (
	"fmt"
	"strings"
)

type StorageType string

const (
	StorageRefrigerator StorageType = "refrigerator"
	StorageFreezer      StorageType = "freezer"
	StorageGeneric      StorageType = "storage"
	StorageCellar       StorageType = "cellar"
	StoragePool         StorageType = "pool"
	StorageTable        StorageType = "table"
)

func (s StorageType) IsValid() bool {
	switch s {
	case StorageRefrigerator, StorageFreezer, StorageGeneric, StorageCellar, StoragePool, StorageTable:
		return true
	default:
		return false
	}
}

// RequiresTemperature reports whether temperature bounds are meaningful for this type.
func (s StorageType) RequiresTemperature() bool {
	return s == StorageRefrigerator || s == StorageFreezer
}

func NewStorageType(value string) (StorageType, error) {
	normalized := strings.Replace(strings.ToLower(strings.TrimSpace(value)), " ", "-", -1)
	storageType := StorageType(normalized)
	if !storageType.IsValid() {
		return storageType, fmt.Errorf(
			"value not valid, only valid values are: %s, %s, %s, %s, %s, %s",
			StorageRefrigerator, StorageFreezer, StorageGeneric, StorageCellar, StoragePool, StorageTable,
		)
	}

	return storageType, nil
}

func (s StorageType) String() string {
	return string(s)
}
