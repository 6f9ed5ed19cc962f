package stats

import (
	"testing"
	"time"

	"oysterfarm/internal/inventory/engine"
	"oysterfarm/internal/inventory/store"
	"oysterfarm/internal/inventory/store/memory"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newPopulatedEngine(t *testing.T) (*engine.Engine, time.Time) {
	t.Helper()
	mem := memory.New()
	e := engine.New(mem.Stores(), memory.NewUnitOfWork(mem), metadata.PolicyClamp, zap.NewNop())
	now := time.Now()

	threshold := decimal.NewFromInt(5)
	oysters, err := e.CreateProduct(engine.CreateProductRequest{
		Name:           "Fines de Claire",
		Category:       metadata.CategoryOyster,
		Unit:           metadata.UnitKilogram,
		AlertThreshold: &threshold,
	})
	assert.NoError(t, err)
	wine, err := e.CreateProduct(engine.CreateProductRequest{
		Name:     "Muscadet",
		Category: metadata.CategoryWine,
		Unit:     metadata.UnitBottle,
	})
	assert.NoError(t, err)

	fridge, err := e.CreateLocation(engine.CreateLocationRequest{
		Name:     "fridge-1",
		Type:     metadata.StorageRefrigerator,
		Capacity: decimal.NewFromInt(100),
	})
	assert.NoError(t, err)
	cellar, err := e.CreateLocation(engine.CreateLocationRequest{
		Name:     "cellar-1",
		Type:     metadata.StorageCellar,
		Capacity: decimal.NewFromInt(200),
	})
	assert.NoError(t, err)

	soon := now.Add(3 * 24 * time.Hour)
	_, err = e.AddStock(engine.AddStockRequest{
		ProductID:  oysters.ID,
		LocationID: fridge.ID,
		Quantity:   decimal.NewFromInt(50),
		Unit:       metadata.UnitKilogram,
		ExpiryDate: &soon,
	})
	assert.NoError(t, err)

	// Below the alert threshold, lands as low.
	_, err = e.AddStock(engine.AddStockRequest{
		ProductID:  oysters.ID,
		LocationID: cellar.ID,
		Quantity:   decimal.NewFromInt(3),
		Unit:       metadata.UnitKilogram,
	})
	assert.NoError(t, err)

	far := now.Add(30 * 24 * time.Hour)
	_, err = e.AddStock(engine.AddStockRequest{
		ProductID:  wine.ID,
		LocationID: cellar.ID,
		Quantity:   decimal.NewFromInt(24),
		Unit:       metadata.UnitBottle,
		ExpiryDate: &far,
	})
	assert.NoError(t, err)

	return e, now
}

func TestCollectSnapshot(t *testing.T) {
	e, now := newPopulatedEngine(t)

	snapshot, err := NewAggregator(e).Collect(now)
	assert.NoError(t, err)

	assert.Equal(t, 2, snapshot.TotalProducts)
	assert.Equal(t, 1, snapshot.LowStockCount)
	assert.Equal(t, 1, snapshot.ExpiringSoonCount)
	assert.Equal(t, 2, snapshot.CategoryBreakdown[metadata.CategoryOyster])
	assert.Equal(t, 1, snapshot.CategoryBreakdown[metadata.CategoryWine])
	assert.Equal(t, 3, snapshot.MovementCounts[metadata.MovementIn])
	assert.Equal(t, now, snapshot.GeneratedAt)

	usage := make(map[string]LocationUsage, len(snapshot.Locations))
	for _, location := range snapshot.Locations {
		usage[location.Name] = location
	}
	assert.Len(t, usage, 2)
	assert.InDelta(t, 0.5, usage["fridge-1"].Utilization, 0.0001)
	assert.InDelta(t, 0.135, usage["cellar-1"].Utilization, 0.0001)
}

func TestCollectCountsMovementTypes(t *testing.T) {
	e, now := newPopulatedEngine(t)

	oysterStocks, err := e.ListStocks(store.StockFilter{})
	assert.NoError(t, err)
	var source *models.Stock
	for i := range oysterStocks {
		if oysterStocks[i].Quantity.Equal(decimal.NewFromInt(50)) {
			source = &oysterStocks[i]
		}
	}
	assert.NotNil(t, source)

	locations, err := e.ListLocations()
	assert.NoError(t, err)
	var target string
	for _, location := range locations {
		if location.ID != source.LocationID {
			target = location.ID
		}
	}

	_, err = e.TransferStock(engine.TransferRequest{
		StockID:          source.ID,
		TargetLocationID: target,
		Quantity:         decimal.NewFromInt(10),
	})
	assert.NoError(t, err)

	snapshot, err := NewAggregator(e).Collect(now)
	assert.NoError(t, err)
	assert.Equal(t, 3, snapshot.MovementCounts[metadata.MovementIn])
	assert.Equal(t, 1, snapshot.MovementCounts[metadata.MovementTransfer])
}

func TestCollectEmptyLedger(t *testing.T) {
	mem := memory.New()
	e := engine.New(mem.Stores(), memory.NewUnitOfWork(mem), metadata.PolicyClamp, zap.NewNop())

	snapshot, err := NewAggregator(e).Collect(time.Now())
	assert.NoError(t, err)
	assert.Zero(t, snapshot.TotalProducts)
	assert.Zero(t, snapshot.LowStockCount)
	assert.Empty(t, snapshot.Locations)
	assert.Empty(t, snapshot.MovementCounts)
}
