package memory

import (
	"oysterfarm/internal/inventory/store"
	"oysterfarm/pkg/models"
)

// Memory keeps every collection in plain maps plus an append-only journal
// slice. It carries no locking of its own, the engine serializes access. Used
// as the default backend when no database is configured and by the engine
// tests.
type Memory struct {
	products  map[string]models.Product
	locations map[string]models.StorageLocation
	stocks    map[string]models.Stock
	movements []models.StockMovement
}

func New() *Memory {
	return &Memory{
		products:  make(map[string]models.Product),
		locations: make(map[string]models.StorageLocation),
		stocks:    make(map[string]models.Stock),
	}
}

func (m *Memory) Stores() store.Stores {
	return store.Stores{
		Products:  &ProductStore{m: m},
		Locations: &LocationStore{m: m},
		Stocks:    &StockStore{m: m},
		Movements: &MovementStore{m: m},
	}
}

type snapshot struct {
	products  map[string]models.Product
	locations map[string]models.StorageLocation
	stocks    map[string]models.Stock
	movements []models.StockMovement
}

func (m *Memory) snapshot() snapshot {
	s := snapshot{
		products:  make(map[string]models.Product, len(m.products)),
		locations: make(map[string]models.StorageLocation, len(m.locations)),
		stocks:    make(map[string]models.Stock, len(m.stocks)),
		movements: make([]models.StockMovement, len(m.movements)),
	}
	for id, p := range m.products {
		s.products[id] = p
	}
	for id, l := range m.locations {
		s.locations[id] = l
	}
	for id, st := range m.stocks {
		s.stocks[id] = st
	}
	copy(s.movements, m.movements)
	return s
}

func (m *Memory) restore(s snapshot) {
	m.products = s.products
	m.locations = s.locations
	m.stocks = s.stocks
	m.movements = s.movements
}

// UnitOfWork snapshots the collections before running fn and restores them when
// fn fails, so a half-applied transfer never survives.
type UnitOfWork struct {
	m *Memory
}

func NewUnitOfWork(m *Memory) *UnitOfWork {
	return &UnitOfWork{m: m}
}

func (u *UnitOfWork) Do(fn func(s store.Stores) error) error {
	snap := u.m.snapshot()
	if err := fn(u.m.Stores()); err != nil {
		u.m.restore(snap)
		return err
	}
	return nil
}
