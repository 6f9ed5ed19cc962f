package memory

import (
	"oysterfarm/internal/inventory/store"
	"oysterfarm/pkg/models"

	"github.com/google/uuid"
)

type MovementStore struct {
	m *Memory
}

// Append is the only write path into the journal, entries are copied in and
// never handed back by reference.
func (s *MovementStore) Append(movement *models.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.NewString()
	}
	s.m.movements = append(s.m.movements, *movement)
	return nil
}

func (s *MovementStore) List(filter store.MovementFilter) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	for _, movement := range s.m.movements {
		if filter.ProductID != nil && movement.ProductID != *filter.ProductID {
			continue
		}
		if filter.LocationID != nil && movement.LocationID != *filter.LocationID {
			continue
		}
		if filter.Type != nil && movement.Type != *filter.Type {
			continue
		}
		if filter.From != nil && movement.PerformedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && movement.PerformedAt.After(*filter.To) {
			continue
		}
		movements = append(movements, movement)
	}
	return movements, nil
}
