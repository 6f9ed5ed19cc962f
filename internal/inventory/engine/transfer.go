package engine

import (
	"oysterfarm/internal/inventory/store"
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TransferRequest struct {
	StockID          string
	TargetLocationID string
	Quantity         decimal.Decimal
	PerformedBy      string
}

type TransferResult struct {
	SourceStock *models.Stock `json:"source_stock"`
	TargetStock *models.Stock `json:"target_stock"`
}

// TransferStock moves a quantity from one stock to a target location. The
// destination merges into an existing stock of the same product and batch or
// becomes a new stock copying unit, batch and expiry from the source. Both
// capacity adjustments, both stock writes and the single TRANSFER journal entry
// commit together; any failure rolls the whole call back. Validation precedes
// every side effect.
func (e *Engine) TransferStock(req TransferRequest) (*TransferResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var result *TransferResult
	err := e.uow.Do(func(s store.Stores) error {
		source, err := s.Stocks.Get(req.StockID)
		if err != nil {
			return err
		}
		if _, err := s.Locations.Get(req.TargetLocationID); err != nil {
			return err
		}
		if !req.Quantity.IsPositive() {
			return custom_error.NewValidationError("transfer quantity must be positive", "quantity")
		}
		if req.Quantity.GreaterThan(source.Quantity) {
			return custom_error.NewValidationError("transfer quantity exceeds available quantity", "quantity")
		}
		if req.TargetLocationID == source.LocationID {
			return custom_error.NewValidationError("target location must differ from the source location", "target_location_id")
		}
		product, err := s.Products.Get(source.ProductID)
		if err != nil {
			return err
		}

		now := e.now()
		target, err := s.Stocks.FindMatch(req.TargetLocationID, source.ProductID, source.BatchNumber)
		if err != nil {
			return err
		}
		if target != nil {
			target.Quantity = target.Quantity.Add(req.Quantity)
			target.Status = metadata.DeriveStockStatus(target.Quantity, product.AlertThreshold, target.ExpiryDate, now)
			target.UpdatedAt = now
			if err := s.Stocks.Update(target); err != nil {
				return err
			}
		} else {
			target = &models.Stock{
				ProductID:   source.ProductID,
				LocationID:  req.TargetLocationID,
				Quantity:    req.Quantity,
				Unit:        source.Unit,
				Status:      metadata.DeriveStockStatus(req.Quantity, product.AlertThreshold, source.ExpiryDate, now),
				BatchNumber: source.BatchNumber,
				ArrivalDate: source.ArrivalDate,
				ExpiryDate:  source.ExpiryDate,
				Notes:       source.Notes,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := s.Stocks.Insert(target); err != nil {
				return err
			}
		}
		if _, err := s.Locations.AdjustCapacity(req.TargetLocationID, req.Quantity, e.policy); err != nil {
			return err
		}

		source.Quantity = source.Quantity.Sub(req.Quantity)
		source.Status = metadata.DeriveStockStatus(source.Quantity, product.AlertThreshold, source.ExpiryDate, now)
		source.UpdatedAt = now
		if err := s.Stocks.Update(source); err != nil {
			return err
		}
		if _, err := s.Locations.AdjustCapacity(source.LocationID, req.Quantity.Neg(), e.policy); err != nil {
			return err
		}

		from := source.LocationID
		to := req.TargetLocationID
		if err := e.appendMovement(s, source, metadata.MovementTransfer, req.Quantity, "stock transfer", req.PerformedBy, &from, &to, now); err != nil {
			return err
		}

		result = &TransferResult{SourceStock: source, TargetStock: target}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("stock transferred",
		zap.String("stock_id", result.SourceStock.ID),
		zap.String("from_location_id", result.SourceStock.LocationID),
		zap.String("to_location_id", result.TargetStock.LocationID),
		zap.String("quantity", req.Quantity.String()),
	)

	return result, nil
}
