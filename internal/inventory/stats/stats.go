package stats

import (
	"time"

	"oysterfarm/internal/inventory/store"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/shopspring/decimal"
)

const expiringSoonWindow = 7 * 24 * time.Hour

// ReadView hands the aggregator a consistent read over the stores. The engine
// implements it with its read lock, so a snapshot never observes a torn write.
type ReadView interface {
	View(fn func(s store.Stores) error) error
}

type LocationUsage struct {
	LocationID  string          `json:"location_id"`
	Name        string          `json:"name"`
	Total       decimal.Decimal `json:"total"`
	Used        decimal.Decimal `json:"used"`
	Utilization float64         `json:"utilization"`
}

type Snapshot struct {
	TotalProducts     int                              `json:"total_products"`
	LowStockCount     int                              `json:"low_stock_count"`
	ExpiringSoonCount int                              `json:"expiring_soon_count"`
	Locations         []LocationUsage                  `json:"locations"`
	CategoryBreakdown map[metadata.ProductCategory]int `json:"category_breakdown"`
	MovementCounts    map[metadata.MovementType]int    `json:"movement_counts"`
	GeneratedAt       time.Time                        `json:"generated_at"`
}

// Aggregator derives a point-in-time inventory snapshot. It never mutates
// state.
type Aggregator struct {
	view ReadView
}

func NewAggregator(view ReadView) *Aggregator {
	return &Aggregator{view: view}
}

func (a *Aggregator) Collect(now time.Time) (*Snapshot, error) {
	snapshot := &Snapshot{
		CategoryBreakdown: make(map[metadata.ProductCategory]int),
		MovementCounts:    make(map[metadata.MovementType]int),
		GeneratedAt:       now,
	}

	err := a.view.View(func(s store.Stores) error {
		stocks, err := s.Stocks.List(store.StockFilter{})
		if err != nil {
			return err
		}
		products, err := s.Products.List()
		if err != nil {
			return err
		}
		locations, err := s.Locations.List()
		if err != nil {
			return err
		}
		movements, err := s.Movements.List(store.MovementFilter{})
		if err != nil {
			return err
		}

		categories := make(map[string]metadata.ProductCategory, len(products))
		for _, product := range products {
			categories[product.ID] = product.Category
		}

		stockedProducts := make(map[string]struct{})
		deadline := now.Add(expiringSoonWindow)
		for _, stock := range stocks {
			stockedProducts[stock.ProductID] = struct{}{}
			if stock.Status == metadata.StatusLow {
				snapshot.LowStockCount++
			}
			if expiringSoon(stock, now, deadline) {
				snapshot.ExpiringSoonCount++
			}
			if category, ok := categories[stock.ProductID]; ok {
				snapshot.CategoryBreakdown[category]++
			}
		}
		snapshot.TotalProducts = len(stockedProducts)

		for _, location := range locations {
			usage := LocationUsage{
				LocationID: location.ID,
				Name:       location.Name,
				Total:      location.Capacity,
				Used:       location.CurrentCapacity,
			}
			if location.Capacity.IsPositive() {
				usage.Utilization, _ = location.CurrentCapacity.Div(location.Capacity).Float64()
			}
			snapshot.Locations = append(snapshot.Locations, usage)
		}

		for _, movement := range movements {
			snapshot.MovementCounts[movement.Type]++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// expiringSoon counts stock whose expiry falls inside the next seven days,
// today inclusive. Already-expired stock is excluded.
func expiringSoon(stock models.Stock, now, deadline time.Time) bool {
	if stock.ExpiryDate == nil {
		return false
	}
	return stock.ExpiryDate.After(now) && !stock.ExpiryDate.After(deadline)
}
