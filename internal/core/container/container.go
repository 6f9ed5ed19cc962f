package container

import (
	"database/sql"

	"oysterfarm/internal/inventory/engine"
	"oysterfarm/internal/inventory/locations"
	"oysterfarm/internal/inventory/movements"
	"oysterfarm/internal/inventory/products"
	"oysterfarm/internal/inventory/stats"
	"oysterfarm/internal/inventory/stocks"
	"oysterfarm/internal/inventory/store"
	"oysterfarm/internal/inventory/store/memory"
	"oysterfarm/internal/inventory/store/postgres"
	"oysterfarm/internal/repository"
	"oysterfarm/pkg/metadata"

	"go.uber.org/zap"
)

type Container struct {
	Engine          *engine.Engine
	ProductHandler  *products.ProductHandler
	LocationHandler *locations.LocationHandler
	StockHandler    *stocks.StockHandler
	MovementHandler *movements.MovementHandler
	StatsHandler    *stats.StatsHandler
}

// NewAppContainer wires the whole service. A nil db selects the in-memory
// backend, otherwise the stores run against postgres with every mutating
// engine call in one transaction.
func NewAppContainer(db *sql.DB, policy metadata.CapacityPolicy, logger *zap.Logger) *Container {
	var stores store.Stores
	var uow store.UnitOfWork

	if db != nil {
		repo := repository.NewRepository(db)
		stores = postgres.NewStores(repo.GoquDBWrapper)
		uow = postgres.NewUnitOfWork(repo)
	} else {
		mem := memory.New()
		stores = mem.Stores()
		uow = memory.NewUnitOfWork(mem)
	}

	inventoryEngine := engine.New(stores, uow, policy, logger)
	aggregator := stats.NewAggregator(inventoryEngine)

	return &Container{
		Engine:          inventoryEngine,
		ProductHandler:  products.NewProductHandler(inventoryEngine),
		LocationHandler: locations.NewLocationHandler(inventoryEngine),
		StockHandler:    stocks.NewStockHandler(inventoryEngine),
		MovementHandler: movements.NewMovementHandler(inventoryEngine),
		StatsHandler:    stats.NewStatsHandler(aggregator),
	}
}
