package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"oysterfarm/internal/inventory/store"
	"oysterfarm/internal/repository"
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type StockStore struct {
	db runner
}

type stockRow struct {
	ID          string          `db:"id"`
	ProductID   string          `db:"product_id"`
	LocationID  string          `db:"location_id"`
	Quantity    decimal.Decimal `db:"quantity"`
	Unit        string          `db:"unit"`
	Status      string          `db:"status"`
	BatchNumber sql.NullString  `db:"batch_number"`
	ArrivalDate time.Time       `db:"arrival_date"`
	ExpiryDate  sql.NullTime    `db:"expiry_date"`
	Notes       sql.NullString  `db:"notes"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r stockRow) toStock() models.Stock {
	stock := models.Stock{
		ID:          r.ID,
		ProductID:   r.ProductID,
		LocationID:  r.LocationID,
		Quantity:    r.Quantity,
		Unit:        metadata.Unit(r.Unit),
		Status:      metadata.StockStatus(r.Status),
		ArrivalDate: r.ArrivalDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.BatchNumber.Valid {
		batch := r.BatchNumber.String
		stock.BatchNumber = &batch
	}
	if r.ExpiryDate.Valid {
		expiry := r.ExpiryDate.Time
		stock.ExpiryDate = &expiry
	}
	if r.Notes.Valid {
		notes := r.Notes.String
		stock.Notes = &notes
	}
	return stock
}

func stockRecord(stock *models.Stock) goqu.Record {
	return goqu.Record{
		"product_id":   stock.ProductID,
		"location_id":  stock.LocationID,
		"quantity":     stock.Quantity,
		"unit":         stock.Unit.String(),
		"status":       stock.Status.String(),
		"batch_number": nullString(stock.BatchNumber),
		"arrival_date": stock.ArrivalDate,
		"expiry_date":  nullTime(stock.ExpiryDate),
		"notes":        nullString(stock.Notes),
		"updated_at":   stock.UpdatedAt,
	}
}

func (s *StockStore) Insert(stock *models.Stock) error {
	if stock.ID == "" {
		stock.ID = uuid.NewString()
	}

	record := stockRecord(stock)
	record["id"] = stock.ID
	record["created_at"] = stock.CreatedAt

	if _, err := s.db.Insert("stocks").Rows(record).Executor().Exec(); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("stock "+stock.ID, string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert stock record: %w", err)
	}

	return nil
}

func (s *StockStore) Get(id string) (*models.Stock, error) {
	var row stockRow
	query := s.db.From("stocks").Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, fmt.Errorf("unable to select stock from database: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("stock", id)
	}

	stock := row.toStock()
	return &stock, nil
}

func (s *StockStore) List(filter store.StockFilter) ([]models.Stock, error) {
	conditions := repository.NewQueryBuilder()
	if filter.ProductID != nil {
		conditions.AddCondition("product_id", *filter.ProductID)
	}
	if filter.LocationID != nil {
		conditions.AddCondition("location_id", *filter.LocationID)
	}

	var rows []stockRow
	query := s.db.From("stocks").
		Where(conditions.BuildConditions(nil)).
		Order(goqu.I("created_at").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to select stocks from database: %w", err)
	}

	stocks := make([]models.Stock, 0, len(rows))
	for _, row := range rows {
		stocks = append(stocks, row.toStock())
	}

	return stocks, nil
}

func (s *StockStore) Update(stock *models.Stock) error {
	query := s.db.Update("stocks").
		Set(stockRecord(stock)).
		Where(goqu.Ex{"id": stock.ID})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFoundError("stock", stock.ID)
	}

	return nil
}

func (s *StockStore) Delete(id string) error {
	result, err := s.db.Delete("stocks").Where(goqu.Ex{"id": id}).Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to delete stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFoundError("stock", id)
	}

	return nil
}

func (s *StockStore) FindMatch(locationID, productID string, batchNumber *string) (*models.Stock, error) {
	conditions := goqu.Ex{
		"location_id": locationID,
		"product_id":  productID,
	}
	// nil renders as IS NULL, a NullString would compare against NULL and never match
	if batchNumber == nil {
		conditions["batch_number"] = nil
	} else {
		conditions["batch_number"] = *batchNumber
	}

	var row stockRow
	found, err := s.db.From("stocks").Where(conditions).Executor().ScanStruct(&row)
	if err != nil {
		return nil, fmt.Errorf("unable to select stock from database: %w", err)
	}
	if !found {
		return nil, nil
	}

	stock := row.toStock()
	return &stock, nil
}

func (s *StockStore) CountByProduct(productID string) (int, error) {
	return s.countBy(goqu.Ex{"product_id": productID})
}

func (s *StockStore) CountByLocation(locationID string) (int, error) {
	return s.countBy(goqu.Ex{"location_id": locationID})
}

func (s *StockStore) countBy(conditions goqu.Ex) (int, error) {
	var count int
	query := s.db.From("stocks").Select(goqu.COUNT("id")).Where(conditions)

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("unable to count stocks: %w", err)
	}

	return count, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
