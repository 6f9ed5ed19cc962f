package engine

import (
	"time"

	"oysterfarm/internal/inventory/store"
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AddStockRequest struct {
	ProductID   string
	LocationID  string
	Quantity    decimal.Decimal
	Unit        metadata.Unit
	BatchNumber *string
	ArrivalDate time.Time
	ExpiryDate  *time.Time
	Notes       *string
	PerformedBy string
}

// StockPatch carries the externally-settable stock fields. Status is absent on
// purpose, it is always recomputed. Nil fields stay untouched.
type StockPatch struct {
	Quantity    *decimal.Decimal
	BatchNumber *string
	ArrivalDate *time.Time
	ExpiryDate  *time.Time
	Notes       *string
	PerformedBy string
}

// AddStock validates both references, derives the initial status, books the
// quantity against the location capacity and appends one IN movement, all as a
// single unit of work.
func (e *Engine) AddStock(req AddStockRequest) (*models.Stock, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var created *models.Stock
	err := e.uow.Do(func(s store.Stores) error {
		product, err := s.Products.Get(req.ProductID)
		if err != nil {
			return err
		}
		if _, err := s.Locations.Get(req.LocationID); err != nil {
			return err
		}
		if !req.Quantity.IsPositive() {
			return custom_error.NewValidationError("quantity must be positive", "quantity")
		}
		if req.Unit != product.Unit {
			return custom_error.NewValidationError("unit does not match the product unit", "unit")
		}

		now := e.now()
		arrival := req.ArrivalDate
		if arrival.IsZero() {
			arrival = now
		}

		stock := &models.Stock{
			ProductID:   req.ProductID,
			LocationID:  req.LocationID,
			Quantity:    req.Quantity,
			Unit:        req.Unit,
			Status:      metadata.DeriveStockStatus(req.Quantity, product.AlertThreshold, req.ExpiryDate, now),
			BatchNumber: req.BatchNumber,
			ArrivalDate: arrival,
			ExpiryDate:  req.ExpiryDate,
			Notes:       req.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.Stocks.Insert(stock); err != nil {
			return err
		}
		if _, err := s.Locations.AdjustCapacity(req.LocationID, req.Quantity, e.policy); err != nil {
			return err
		}
		if err := e.appendMovement(s, stock, metadata.MovementIn, req.Quantity, "stock added", req.PerformedBy, nil, nil, now); err != nil {
			return err
		}

		created = stock
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("stock added",
		zap.String("stock_id", created.ID),
		zap.String("product_id", created.ProductID),
		zap.String("location_id", created.LocationID),
		zap.String("quantity", created.Quantity.String()),
	)

	return created, nil
}

func (e *Engine) GetStock(id string) (*models.Stock, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stores.Stocks.Get(id)
}

func (e *Engine) ListStocks(filter store.StockFilter) ([]models.Stock, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stores.Stocks.List(filter)
}

// UpdateStock applies the patch, books any quantity difference against the
// location capacity with one IN or OUT movement of its magnitude, and
// recomputes the status from the new quantity and the possibly-new expiry.
func (e *Engine) UpdateStock(id string, patch StockPatch) (*models.Stock, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var updated *models.Stock
	err := e.uow.Do(func(s store.Stores) error {
		stock, err := s.Stocks.Get(id)
		if err != nil {
			return err
		}
		product, err := s.Products.Get(stock.ProductID)
		if err != nil {
			return err
		}

		now := e.now()
		if patch.BatchNumber != nil {
			stock.BatchNumber = patch.BatchNumber
		}
		if patch.ArrivalDate != nil {
			stock.ArrivalDate = *patch.ArrivalDate
		}
		if patch.ExpiryDate != nil {
			stock.ExpiryDate = patch.ExpiryDate
		}
		if patch.Notes != nil {
			stock.Notes = patch.Notes
		}

		if patch.Quantity != nil && !patch.Quantity.Equal(stock.Quantity) {
			if patch.Quantity.IsNegative() {
				return custom_error.NewValidationError("quantity cannot be negative", "quantity")
			}
			diff := patch.Quantity.Sub(stock.Quantity)
			stock.Quantity = *patch.Quantity

			if _, err := s.Locations.AdjustCapacity(stock.LocationID, diff, e.policy); err != nil {
				return err
			}
			movementType := metadata.MovementIn
			if diff.IsNegative() {
				movementType = metadata.MovementOut
			}
			if err := e.appendMovement(s, stock, movementType, diff.Abs(), "stock updated", patch.PerformedBy, nil, nil, now); err != nil {
				return err
			}
		}

		stock.Status = metadata.DeriveStockStatus(stock.Quantity, product.AlertThreshold, stock.ExpiryDate, now)
		stock.UpdatedAt = now
		if err := s.Stocks.Update(stock); err != nil {
			return err
		}

		updated = stock
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveStock releases the booked capacity, appends one OUT movement and
// deletes the record. The journal keeps every movement the stock ever made.
func (e *Engine) RemoveStock(id string, performedBy string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.uow.Do(func(s store.Stores) error {
		stock, err := s.Stocks.Get(id)
		if err != nil {
			return err
		}

		if _, err := s.Locations.AdjustCapacity(stock.LocationID, stock.Quantity.Neg(), e.policy); err != nil {
			return err
		}
		if err := e.appendMovement(s, stock, metadata.MovementOut, stock.Quantity, "stock removed", performedBy, nil, nil, e.now()); err != nil {
			return err
		}

		return s.Stocks.Delete(id)
	})
}

func (e *Engine) ListMovements(filter store.MovementFilter) ([]models.StockMovement, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stores.Movements.List(filter)
}

func (e *Engine) appendMovement(s store.Stores, stock *models.Stock, movementType metadata.MovementType, quantity decimal.Decimal, reason, performedBy string, from, to *string, now time.Time) error {
	if performedBy == "" {
		performedBy = "system"
	}
	movement := &models.StockMovement{
		StockID:        stock.ID,
		ProductID:      stock.ProductID,
		LocationID:     stock.LocationID,
		Type:           movementType,
		Quantity:       quantity,
		Unit:           stock.Unit,
		FromLocationID: from,
		ToLocationID:   to,
		Reason:         &reason,
		PerformedBy:    performedBy,
		PerformedAt:    now,
		CreatedAt:      now,
	}
	return s.Movements.Append(movement)
}
