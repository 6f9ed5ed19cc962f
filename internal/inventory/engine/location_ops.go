package engine

import (
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/shopspring/decimal"
)

type CreateLocationRequest struct {
	Name                string
	Type                metadata.StorageType
	Capacity            decimal.Decimal
	CurrentTemperature  *decimal.Decimal
	IdealMinTemperature *decimal.Decimal
	IdealMaxTemperature *decimal.Decimal
}

type LocationPatch struct {
	Name                *string
	Type                *metadata.StorageType
	Capacity            *decimal.Decimal
	CurrentTemperature  *decimal.Decimal
	IdealMinTemperature *decimal.Decimal
	IdealMaxTemperature *decimal.Decimal
}

func (e *Engine) CreateLocation(req CreateLocationRequest) (*models.StorageLocation, error) {
	if req.Name == "" {
		return nil, custom_error.NewValidationError("name is required", "name")
	}
	if !req.Type.IsValid() {
		return nil, custom_error.NewValidationError("unknown storage type", "type")
	}
	if req.Capacity.IsNegative() {
		return nil, custom_error.NewValidationError("capacity cannot be negative", "capacity")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	location := &models.StorageLocation{
		Name:                req.Name,
		Type:                req.Type,
		Capacity:            req.Capacity,
		CurrentCapacity:     decimal.Zero,
		CurrentTemperature:  req.CurrentTemperature,
		IdealMinTemperature: req.IdealMinTemperature,
		IdealMaxTemperature: req.IdealMaxTemperature,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := e.stores.Locations.Insert(location); err != nil {
		return nil, err
	}

	return location, nil
}

func (e *Engine) GetLocation(id string) (*models.StorageLocation, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stores.Locations.Get(id)
}

func (e *Engine) ListLocations() ([]models.StorageLocation, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stores.Locations.List()
}

// UpdateLocation patches location fields. Shrinking the total capacity below
// the currently-used capacity re-clamps the used value so the bound invariant
// holds after the patch.
func (e *Engine) UpdateLocation(id string, patch LocationPatch) (*models.StorageLocation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	location, err := e.stores.Locations.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		location.Name = *patch.Name
	}
	if patch.Type != nil {
		if !patch.Type.IsValid() {
			return nil, custom_error.NewValidationError("unknown storage type", "type")
		}
		location.Type = *patch.Type
	}
	if patch.Capacity != nil {
		if patch.Capacity.IsNegative() {
			return nil, custom_error.NewValidationError("capacity cannot be negative", "capacity")
		}
		location.Capacity = *patch.Capacity
		if location.CurrentCapacity.GreaterThan(location.Capacity) {
			location.CurrentCapacity = location.Capacity
		}
	}
	if patch.CurrentTemperature != nil {
		location.CurrentTemperature = patch.CurrentTemperature
	}
	if patch.IdealMinTemperature != nil {
		location.IdealMinTemperature = patch.IdealMinTemperature
	}
	if patch.IdealMaxTemperature != nil {
		location.IdealMaxTemperature = patch.IdealMaxTemperature
	}
	location.UpdatedAt = e.now()

	if err := e.stores.Locations.Update(location); err != nil {
		return nil, err
	}

	return location, nil
}

func (e *Engine) DeleteLocation(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.stores.Locations.Get(id); err != nil {
		return err
	}

	references, err := e.stores.Stocks.CountByLocation(id)
	if err != nil {
		return err
	}
	if references > 0 {
		return custom_error.NewConflictError("location is still referenced by stock records")
	}

	return e.stores.Locations.Delete(id)
}
