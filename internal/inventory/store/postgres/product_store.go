package postgres

import (
	"fmt"
	"time"

	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type ProductStore struct {
	db runner
}

type productRow struct {
	ID             string              `db:"id"`
	Name           string              `db:"name"`
	Category       string              `db:"category"`
	Unit           string              `db:"unit"`
	AlertThreshold decimal.NullDecimal `db:"alert_threshold"`
	CreatedAt      time.Time           `db:"created_at"`
	UpdatedAt      time.Time           `db:"updated_at"`
}

func (r productRow) toProduct() models.Product {
	product := models.Product{
		ID:        r.ID,
		Name:      r.Name,
		Category:  metadata.ProductCategory(r.Category),
		Unit:      metadata.Unit(r.Unit),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.AlertThreshold.Valid {
		threshold := r.AlertThreshold.Decimal
		product.AlertThreshold = &threshold
	}
	return product
}

func (s *ProductStore) Insert(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	query := s.db.Insert("products").
		Rows(goqu.Record{
			"id":              product.ID,
			"name":            product.Name,
			"category":        product.Category.String(),
			"unit":            product.Unit.String(),
			"alert_threshold": nullDecimal(product.AlertThreshold),
			"created_at":      product.CreatedAt,
			"updated_at":      product.UpdatedAt,
		})

	if _, err := query.Executor().Exec(); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("product "+product.ID, string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert product record: %w", err)
	}

	return nil
}

func (s *ProductStore) Get(id string) (*models.Product, error) {
	var row productRow
	query := s.db.From("products").Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, fmt.Errorf("unable to select product from database: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("product", id)
	}

	product := row.toProduct()
	return &product, nil
}

func (s *ProductStore) List() ([]models.Product, error) {
	var rows []productRow
	query := s.db.From("products").Order(goqu.I("created_at").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to select products from database: %w", err)
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toProduct())
	}

	return products, nil
}

func (s *ProductStore) Update(product *models.Product) error {
	query := s.db.Update("products").
		Set(goqu.Record{
			"name":            product.Name,
			"category":        product.Category.String(),
			"unit":            product.Unit.String(),
			"alert_threshold": nullDecimal(product.AlertThreshold),
			"updated_at":      product.UpdatedAt,
		}).
		Where(goqu.Ex{"id": product.ID})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFoundError("product", product.ID)
	}

	return nil
}

func (s *ProductStore) Delete(id string) error {
	result, err := s.db.Delete("products").Where(goqu.Ex{"id": id}).Executor().Exec()
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("product "+id, string(pqErr.Code))
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFoundError("product", id)
	}

	return nil
}

func nullDecimal(value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *value, Valid: true}
}
