package memory

import (
	"oysterfarm/internal/inventory/store"
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/models"

	"github.com/google/uuid"
)

type StockStore struct {
	m *Memory
}

func (s *StockStore) Insert(stock *models.Stock) error {
	if stock.ID == "" {
		stock.ID = uuid.NewString()
	}
	s.m.stocks[stock.ID] = *stock
	return nil
}

func (s *StockStore) Get(id string) (*models.Stock, error) {
	stock, ok := s.m.stocks[id]
	if !ok {
		return nil, custom_error.NewNotFoundError("stock", id)
	}
	return &stock, nil
}

func (s *StockStore) List(filter store.StockFilter) ([]models.Stock, error) {
	var stocks []models.Stock
	for _, stock := range s.m.stocks {
		if filter.ProductID != nil && stock.ProductID != *filter.ProductID {
			continue
		}
		if filter.LocationID != nil && stock.LocationID != *filter.LocationID {
			continue
		}
		stocks = append(stocks, stock)
	}
	return stocks, nil
}

func (s *StockStore) Update(stock *models.Stock) error {
	if _, ok := s.m.stocks[stock.ID]; !ok {
		return custom_error.NewNotFoundError("stock", stock.ID)
	}
	s.m.stocks[stock.ID] = *stock
	return nil
}

func (s *StockStore) Delete(id string) error {
	if _, ok := s.m.stocks[id]; !ok {
		return custom_error.NewNotFoundError("stock", id)
	}
	delete(s.m.stocks, id)
	return nil
}

func (s *StockStore) FindMatch(locationID, productID string, batchNumber *string) (*models.Stock, error) {
	for _, stock := range s.m.stocks {
		if stock.LocationID != locationID || stock.ProductID != productID {
			continue
		}
		if sameBatch(stock.BatchNumber, batchNumber) {
			match := stock
			return &match, nil
		}
	}
	return nil, nil
}

func (s *StockStore) CountByProduct(productID string) (int, error) {
	count := 0
	for _, stock := range s.m.stocks {
		if stock.ProductID == productID {
			count++
		}
	}
	return count, nil
}

func (s *StockStore) CountByLocation(locationID string) (int, error) {
	count := 0
	for _, stock := range s.m.stocks {
		if stock.LocationID == locationID {
			count++
		}
	}
	return count, nil
}

func sameBatch(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
