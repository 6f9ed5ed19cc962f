package memory

import (
	"oysterfarm/internal/inventory/store"
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LocationStore struct {
	m *Memory
}

func (s *LocationStore) Insert(location *models.StorageLocation) error {
	if location.ID == "" {
		location.ID = uuid.NewString()
	}
	s.m.locations[location.ID] = *location
	return nil
}

func (s *LocationStore) Get(id string) (*models.StorageLocation, error) {
	location, ok := s.m.locations[id]
	if !ok {
		return nil, custom_error.NewNotFoundError("location", id)
	}
	return &location, nil
}

func (s *LocationStore) List() ([]models.StorageLocation, error) {
	locations := make([]models.StorageLocation, 0, len(s.m.locations))
	for _, location := range s.m.locations {
		locations = append(locations, location)
	}
	return locations, nil
}

func (s *LocationStore) Update(location *models.StorageLocation) error {
	if _, ok := s.m.locations[location.ID]; !ok {
		return custom_error.NewNotFoundError("location", location.ID)
	}
	s.m.locations[location.ID] = *location
	return nil
}

func (s *LocationStore) Delete(id string) error {
	if _, ok := s.m.locations[id]; !ok {
		return custom_error.NewNotFoundError("location", id)
	}
	delete(s.m.locations, id)
	return nil
}

func (s *LocationStore) AdjustCapacity(id string, delta decimal.Decimal, policy metadata.CapacityPolicy) (*models.StorageLocation, error) {
	location, ok := s.m.locations[id]
	if !ok {
		return nil, custom_error.NewNotFoundError("location", id)
	}

	if err := store.ApplyCapacityDelta(&location, delta, policy); err != nil {
		return nil, err
	}

	s.m.locations[id] = location
	return &location, nil
}
