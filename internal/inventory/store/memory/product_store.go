package memory

import (
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/models"

	"github.com/google/uuid"
)

type ProductStore struct {
	m *Memory
}

func (s *ProductStore) Insert(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	s.m.products[product.ID] = *product
	return nil
}

func (s *ProductStore) Get(id string) (*models.Product, error) {
	product, ok := s.m.products[id]
	if !ok {
		return nil, custom_error.NewNotFoundError("product", id)
	}
	return &product, nil
}

func (s *ProductStore) List() ([]models.Product, error) {
	products := make([]models.Product, 0, len(s.m.products))
	for _, product := range s.m.products {
		products = append(products, product)
	}
	return products, nil
}

func (s *ProductStore) Update(product *models.Product) error {
	if _, ok := s.m.products[product.ID]; !ok {
		return custom_error.NewNotFoundError("product", product.ID)
	}
	s.m.products[product.ID] = *product
	return nil
}

func (s *ProductStore) Delete(id string) error {
	if _, ok := s.m.products[id]; !ok {
		return custom_error.NewNotFoundError("product", id)
	}
	delete(s.m.products, id)
	return nil
}
