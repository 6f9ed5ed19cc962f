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

// MovementStore only ever inserts and selects, the journal carries no update or
// delete path at all.
type MovementStore struct {
	db runner
}

type movementRow struct {
	ID             string          `db:"id"`
	StockID        string          `db:"stock_id"`
	ProductID      string          `db:"product_id"`
	LocationID     string          `db:"location_id"`
	Type           string          `db:"type"`
	Quantity       decimal.Decimal `db:"quantity"`
	Unit           string          `db:"unit"`
	FromLocationID sql.NullString  `db:"from_location_id"`
	ToLocationID   sql.NullString  `db:"to_location_id"`
	Reason         sql.NullString  `db:"reason"`
	PerformedBy    string          `db:"performed_by"`
	PerformedAt    time.Time       `db:"performed_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (r movementRow) toMovement() models.StockMovement {
	movement := models.StockMovement{
		ID:          r.ID,
		StockID:     r.StockID,
		ProductID:   r.ProductID,
		LocationID:  r.LocationID,
		Type:        metadata.MovementType(r.Type),
		Quantity:    r.Quantity,
		Unit:        metadata.Unit(r.Unit),
		PerformedBy: r.PerformedBy,
		PerformedAt: r.PerformedAt,
		CreatedAt:   r.CreatedAt,
	}
	if r.FromLocationID.Valid {
		from := r.FromLocationID.String
		movement.FromLocationID = &from
	}
	if r.ToLocationID.Valid {
		to := r.ToLocationID.String
		movement.ToLocationID = &to
	}
	if r.Reason.Valid {
		reason := r.Reason.String
		movement.Reason = &reason
	}
	return movement
}

func (s *MovementStore) Append(movement *models.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.NewString()
	}

	query := s.db.Insert("stock_movements").
		Rows(goqu.Record{
			"id":               movement.ID,
			"stock_id":         movement.StockID,
			"product_id":       movement.ProductID,
			"location_id":      movement.LocationID,
			"type":             movement.Type.String(),
			"quantity":         movement.Quantity,
			"unit":             movement.Unit.String(),
			"from_location_id": nullString(movement.FromLocationID),
			"to_location_id":   nullString(movement.ToLocationID),
			"reason":           nullString(movement.Reason),
			"performed_by":     movement.PerformedBy,
			"performed_at":     movement.PerformedAt,
			"created_at":       movement.CreatedAt,
		})

	if _, err := query.Executor().Exec(); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("movement "+movement.ID, string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert movement record: %w", err)
	}

	return nil
}

func (s *MovementStore) List(filter store.MovementFilter) ([]models.StockMovement, error) {
	conditions := repository.NewQueryBuilder()
	if filter.ProductID != nil {
		conditions.AddCondition("product_id", *filter.ProductID)
	}
	if filter.LocationID != nil {
		conditions.AddCondition("location_id", *filter.LocationID)
	}
	if filter.Type != nil {
		conditions.AddCondition("type", filter.Type.String())
	}

	query := s.db.From("stock_movements").
		Where(conditions.BuildConditions(nil)).
		Order(goqu.I("performed_at").Desc())

	if filter.From != nil {
		query = query.Where(goqu.I("performed_at").Gte(*filter.From))
	}
	if filter.To != nil {
		query = query.Where(goqu.I("performed_at").Lte(*filter.To))
	}

	var rows []movementRow
	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to select movements from database: %w", err)
	}

	movements := make([]models.StockMovement, 0, len(rows))
	for _, row := range rows {
		movements = append(movements, row.toMovement())
	}

	return movements, nil
}
