package memory

import (
	"errors"
	"testing"

	"oysterfarm/internal/inventory/store"
	"oysterfarm/pkg/metadata"
	"oysterfarm/pkg/models"

	"github.com/shopspring/decimal"
)

func TestUnitOfWorkRollsBackOnError(t *testing.T) {
	m := New()
	stores := m.Stores()
	if err := stores.Products.Insert(&models.Product{Name: "Gillardeau", Category: metadata.CategoryOyster, Unit: metadata.UnitKilogram}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	boom := errors.New("boom")
	err := NewUnitOfWork(m).Do(func(s store.Stores) error {
		if err := s.Products.Insert(&models.Product{Name: "Belon", Category: metadata.CategoryOyster, Unit: metadata.UnitKilogram}); err != nil {
			return err
		}
		if err := s.Movements.Append(&models.StockMovement{Type: metadata.MovementIn, Quantity: decimal.NewFromInt(1)}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error, got %v", err)
	}

	products, err := stores.Products.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("expected 1 product after rollback, got %d", len(products))
	}
	movements, err := stores.Movements.List(store.MovementFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movements) != 0 {
		t.Errorf("expected an empty journal after rollback, got %d entries", len(movements))
	}
}

func TestUnitOfWorkCommitsOnSuccess(t *testing.T) {
	m := New()
	err := NewUnitOfWork(m).Do(func(s store.Stores) error {
		return s.Products.Insert(&models.Product{Name: "Belon", Category: metadata.CategoryOyster, Unit: metadata.UnitKilogram})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	products, err := m.Stores().Products.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("expected 1 product, got %d", len(products))
	}
}

func TestStockFindMatchBatchSemantics(t *testing.T) {
	batch := "LOT-7"
	otherBatch := "LOT-8"

	m := New()
	stocks := m.Stores().Stocks
	withBatch := &models.Stock{ProductID: "p1", LocationID: "l1", Quantity: decimal.NewFromInt(5), BatchNumber: &batch}
	withoutBatch := &models.Stock{ProductID: "p1", LocationID: "l1", Quantity: decimal.NewFromInt(5)}
	if err := stocks.Insert(withBatch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := stocks.Insert(withoutBatch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name       string
		locationID string
		productID  string
		batch      *string
		expectedID string
	}{
		{"same batch", "l1", "p1", &batch, withBatch.ID},
		{"nil matches only nil", "l1", "p1", nil, withoutBatch.ID},
		{"different batch", "l1", "p1", &otherBatch, ""},
		{"different location", "l2", "p1", &batch, ""},
		{"different product", "l1", "p2", &batch, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := stocks.FindMatch(tt.locationID, tt.productID, tt.batch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expectedID == "" {
				if match != nil {
					t.Errorf("expected no match, got stock %s", match.ID)
				}
				return
			}
			if match == nil {
				t.Fatal("expected a match, got nil")
			}
			if match.ID != tt.expectedID {
				t.Errorf("expected stock %s, got %s", tt.expectedID, match.ID)
			}
		})
	}
}

func TestMovementListFilters(t *testing.T) {
	m := New()
	movements := m.Stores().Movements

	entries := []models.StockMovement{
		{ProductID: "p1", LocationID: "l1", Type: metadata.MovementIn, Quantity: decimal.NewFromInt(10)},
		{ProductID: "p1", LocationID: "l2", Type: metadata.MovementOut, Quantity: decimal.NewFromInt(3)},
		{ProductID: "p2", LocationID: "l1", Type: metadata.MovementIn, Quantity: decimal.NewFromInt(4)},
	}
	for i := range entries {
		if err := movements.Append(&entries[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	p1 := "p1"
	byProduct, err := movements.List(store.MovementFilter{ProductID: &p1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byProduct) != 2 {
		t.Errorf("expected 2 movements for p1, got %d", len(byProduct))
	}

	outType := metadata.MovementOut
	byType, err := movements.List(store.MovementFilter{Type: &outType})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byType) != 1 {
		t.Errorf("expected 1 OUT movement, got %d", len(byType))
	}
}

func TestMovementListReturnsCopies(t *testing.T) {
	m := New()
	movements := m.Stores().Movements
	if err := movements.Append(&models.StockMovement{ProductID: "p1", Type: metadata.MovementIn, Quantity: decimal.NewFromInt(10)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, err := movements.List(store.MovementFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listed[0].ProductID = "tampered"

	again, err := movements.List(store.MovementFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again[0].ProductID != "p1" {
		t.Error("journal entry mutated through a listed copy")
	}
}
