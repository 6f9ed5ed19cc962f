package engine

import (
	"sync"
	"time"

	"oysterfarm/internal/inventory/store"
	custom_error "oysterfarm/pkg/errors"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Engine orchestrates every mutating inventory operation. All mutations run
// under one write lock and inside one unit of work, so a sibling call never
// observes a half-applied transfer. Reads run under the read lock.
type Engine struct {
	mu     sync.RWMutex
	stores store.Stores
	uow    store.UnitOfWork
	policy metadata.CapacityPolicy
	logger *zap.Logger
	now    func() time.Time
}

func New(stores store.Stores, uow store.UnitOfWork, policy metadata.CapacityPolicy, logger *zap.Logger) *Engine {
	return &Engine{
		stores: stores,
		uow:    uow,
		policy: policy,
		logger: logger,
		now:    time.Now,
	}
}

// View runs fn against the stores under the read lock. Used by the stats
// aggregator and safe to call concurrently with other reads.
func (e *Engine) View(fn func(s store.Stores) error) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return fn(e.stores)
}

type CreateProductRequest struct {
	Name           string
	Category       metadata.ProductCategory
	Unit           metadata.Unit
	AlertThreshold *decimal.Decimal
}

type ProductPatch struct {
	Name           *string
	Category       *metadata.ProductCategory
	Unit           *metadata.Unit
	AlertThreshold *decimal.Decimal
}

func (e *Engine) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, custom_error.NewValidationError("name is required", "name")
	}
	if !req.Category.IsValid() {
		return nil, custom_error.NewValidationError("unknown product category", "category")
	}
	if !req.Unit.IsValid() {
		return nil, custom_error.NewValidationError("unknown unit of measure", "unit")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	product := &models.Product{
		Name:           req.Name,
		Category:       req.Category,
		Unit:           req.Unit,
		AlertThreshold: req.AlertThreshold,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := e.stores.Products.Insert(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (e *Engine) GetProduct(id string) (*models.Product, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stores.Products.Get(id)
}

func (e *Engine) ListProducts() ([]models.Product, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stores.Products.List()
}

// UpdateProduct patches catalog fields. Category and unit changes do not touch
// the unit already recorded on existing stock records.
func (e *Engine) UpdateProduct(id string, patch ProductPatch) (*models.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.stores.Products.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Category != nil {
		if !patch.Category.IsValid() {
			return nil, custom_error.NewValidationError("unknown product category", "category")
		}
		product.Category = *patch.Category
	}
	if patch.Unit != nil {
		if !patch.Unit.IsValid() {
			return nil, custom_error.NewValidationError("unknown unit of measure", "unit")
		}
		product.Unit = *patch.Unit
	}
	if patch.AlertThreshold != nil {
		product.AlertThreshold = patch.AlertThreshold
	}
	product.UpdatedAt = e.now()

	if err := e.stores.Products.Update(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (e *Engine) DeleteProduct(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.stores.Products.Get(id); err != nil {
		return err
	}

	references, err := e.stores.Stocks.CountByProduct(id)
	if err != nil {
		return err
	}
	if references > 0 {
		return custom_error.NewConflictError("product is still referenced by stock records")
	}

	return e.stores.Products.Delete(id)
}
