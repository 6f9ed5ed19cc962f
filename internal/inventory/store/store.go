package store

import (
	"fmt"
	"time"

	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/shopspring/decimal"
)

// StockFilter narrows stock listings. Nil fields are ignored.
type StockFilter struct {
	ProductID  *string
	LocationID *string
}

// MovementFilter narrows journal listings. Nil fields are ignored, From and To
// bound the performed-at timestamp inclusively.
type MovementFilter struct {
	ProductID  *string
	LocationID *string
	Type       *metadata.MovementType
	From       *time.Time
	To         *time.Time
}

type ProductStore interface {
	Insert(product *models.Product) error
	Get(id string) (*models.Product, error)
	List() ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id string) error
}

type LocationStore interface {
	Insert(location *models.StorageLocation) error
	Get(id string) (*models.StorageLocation, error)
	List() ([]models.StorageLocation, error)
	Update(location *models.StorageLocation) error
	Delete(id string) error
	// AdjustCapacity is the only mutator of CurrentCapacity. Under the clamp
	// policy the result is truncated into [0, capacity]; under reject, an
	// adjustment that would leave the bounds fails without mutating anything.
	AdjustCapacity(id string, delta decimal.Decimal, policy metadata.CapacityPolicy) (*models.StorageLocation, error)
}

type StockStore interface {
	Insert(stock *models.Stock) error
	Get(id string) (*models.Stock, error)
	List(filter StockFilter) ([]models.Stock, error)
	Update(stock *models.Stock) error
	Delete(id string) error
	// FindMatch locates a stock of the same product and batch at a location,
	// used to merge transfer destinations.
	FindMatch(locationID, productID string, batchNumber *string) (*models.Stock, error)
	CountByProduct(productID string) (int, error)
	CountByLocation(locationID string) (int, error)
}

type MovementStore interface {
	Append(movement *models.StockMovement) error
	List(filter MovementFilter) ([]models.StockMovement, error)
}

// ApplyCapacityDelta adds delta to the location's used capacity honoring the
// policy: clamp truncates into [0, capacity], reject fails before mutating.
// Shared by every LocationStore implementation so both backends clamp the same
// way.
func ApplyCapacityDelta(location *models.StorageLocation, delta decimal.Decimal, policy metadata.CapacityPolicy) error {
	adjusted := location.CurrentCapacity.Add(delta)
	if adjusted.IsNegative() || adjusted.GreaterThan(location.Capacity) {
		if policy == metadata.PolicyReject {
			return custom_error.NewInvariantViolationError(fmt.Sprintf(
				"capacity adjustment of %s would leave location %s outside [0, %s]",
				delta, location.ID, location.Capacity,
			))
		}
		if adjusted.IsNegative() {
			adjusted = decimal.Zero
		} else {
			adjusted = location.Capacity
		}
	}
	location.CurrentCapacity = adjusted
	return nil
}

// Stores bundles the four stores one engine instance works against.
type Stores struct {
	Products  ProductStore
	Locations LocationStore
	Stocks    StockStore
	Movements MovementStore
}

// UnitOfWork brackets one mutating engine call. Everything done inside fn
// becomes visible together or not at all.
type UnitOfWork interface {
	Do(fn func(s Stores) error) error
}
