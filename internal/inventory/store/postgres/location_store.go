package postgres

import (
	"fmt"
	"time"

	"oysterfarm/internal/inventory/store"
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type LocationStore struct {
	db runner
}

type locationRow struct {
	ID                  string              `db:"id"`
	Name                string              `db:"name"`
	Type                string              `db:"type"`
	Capacity            decimal.Decimal     `db:"capacity"`
	CurrentCapacity     decimal.Decimal     `db:"current_capacity"`
	CurrentTemperature  decimal.NullDecimal `db:"current_temperature"`
	IdealMinTemperature decimal.NullDecimal `db:"ideal_min_temperature"`
	IdealMaxTemperature decimal.NullDecimal `db:"ideal_max_temperature"`
	CreatedAt           time.Time           `db:"created_at"`
	UpdatedAt           time.Time           `db:"updated_at"`
}

func (r locationRow) toLocation() models.StorageLocation {
	location := models.StorageLocation{
		ID:              r.ID,
		Name:            r.Name,
		Type:            metadata.StorageType(r.Type),
		Capacity:        r.Capacity,
		CurrentCapacity: r.CurrentCapacity,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.CurrentTemperature.Valid {
		temperature := r.CurrentTemperature.Decimal
		location.CurrentTemperature = &temperature
	}
	if r.IdealMinTemperature.Valid {
		temperature := r.IdealMinTemperature.Decimal
		location.IdealMinTemperature = &temperature
	}
	if r.IdealMaxTemperature.Valid {
		temperature := r.IdealMaxTemperature.Decimal
		location.IdealMaxTemperature = &temperature
	}
	return location
}

func (s *LocationStore) Insert(location *models.StorageLocation) error {
	if location.ID == "" {
		location.ID = uuid.NewString()
	}

	query := s.db.Insert("storage_locations").
		Rows(goqu.Record{
			"id":                    location.ID,
			"name":                  location.Name,
			"type":                  location.Type.String(),
			"capacity":              location.Capacity,
			"current_capacity":      location.CurrentCapacity,
			"current_temperature":   nullDecimal(location.CurrentTemperature),
			"ideal_min_temperature": nullDecimal(location.IdealMinTemperature),
			"ideal_max_temperature": nullDecimal(location.IdealMaxTemperature),
			"created_at":            location.CreatedAt,
			"updated_at":            location.UpdatedAt,
		})

	if _, err := query.Executor().Exec(); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("location "+location.ID, string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert location record: %w", err)
	}

	return nil
}

func (s *LocationStore) Get(id string) (*models.StorageLocation, error) {
	var row locationRow
	query := s.db.From("storage_locations").Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, fmt.Errorf("unable to select location from database: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("location", id)
	}

	location := row.toLocation()
	return &location, nil
}

func (s *LocationStore) List() ([]models.StorageLocation, error) {
	var rows []locationRow
	query := s.db.From("storage_locations").Order(goqu.I("created_at").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to select locations from database: %w", err)
	}

	locations := make([]models.StorageLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, row.toLocation())
	}

	return locations, nil
}

func (s *LocationStore) Update(location *models.StorageLocation) error {
	query := s.db.Update("storage_locations").
		Set(goqu.Record{
			"name":                  location.Name,
			"type":                  location.Type.String(),
			"capacity":              location.Capacity,
			"current_capacity":      location.CurrentCapacity,
			"current_temperature":   nullDecimal(location.CurrentTemperature),
			"ideal_min_temperature": nullDecimal(location.IdealMinTemperature),
			"ideal_max_temperature": nullDecimal(location.IdealMaxTemperature),
			"updated_at":            location.UpdatedAt,
		}).
		Where(goqu.Ex{"id": location.ID})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFoundError("location", location.ID)
	}

	return nil
}

func (s *LocationStore) Delete(id string) error {
	result, err := s.db.Delete("storage_locations").Where(goqu.Ex{"id": id}).Executor().Exec()
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("location "+id, string(pqErr.Code))
		}
		return fmt.Errorf("failed to delete location: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFoundError("location", id)
	}

	return nil
}

func (s *LocationStore) AdjustCapacity(id string, delta decimal.Decimal, policy metadata.CapacityPolicy) (*models.StorageLocation, error) {
	location, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := store.ApplyCapacityDelta(location, delta, policy); err != nil {
		return nil, err
	}

	query := s.db.Update("storage_locations").
		Set(goqu.Record{"current_capacity": location.CurrentCapacity}).
		Where(goqu.Ex{"id": id})

	if _, err := query.Executor().Exec(); err != nil {
		return nil, fmt.Errorf("failed to adjust location capacity: %w", err)
	}

	return location, nil
}
