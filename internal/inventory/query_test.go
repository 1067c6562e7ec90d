package inventory

import (
	"testing"
	"time"

	"github.com/riteshp/the-warehouse/internal/catalog"
)

func stocked(state, category string, warehouse int) catalog.StockRecord {
	return catalog.StockRecord{
		State:       state,
		Category:    category,
		Warehouse:   warehouse,
		DateOfStock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func chairCatalog() *catalog.Store {
	// Two chairs in warehouse 1, five in warehouse 2, plus noise.
	records := []catalog.StockRecord{
		stocked("Chair", "Furniture", 1),
		stocked("Chair", "Furniture", 1),
		stocked("Table", "Furniture", 1),
		stocked("Chair", "Furniture", 2),
		stocked("Chair", "Furniture", 2),
		stocked("Chair", "Furniture", 2),
		stocked("Chair", "Furniture", 2),
		stocked("Chair", "Furniture", 2),
		stocked("Router", "Device", 3),
	}
	return catalog.New(records)
}

func TestMatchingIsCaseInsensitiveAndGrouped(t *testing.T) {
	engine := New(chairCatalog())
	matches := engine.MatchingItemsPerWarehouse("chair")
	if len(matches) != 2 {
		t.Fatalf("matched warehouses = %d, want 2", len(matches))
	}
	if len(matches[1]) != 2 || len(matches[2]) != 5 {
		t.Fatalf("match counts = %d/%d, want 2/5", len(matches[1]), len(matches[2]))
	}
	if got := engine.MatchingItemsPerWarehouse("sofa"); len(got) != 0 {
		t.Fatalf("unmatched search returned %d warehouses", len(got))
	}
}

func TestTotalAvailabilityMatchesWholeCatalogCount(t *testing.T) {
	store := chairCatalog()
	engine := New(store)
	matches := engine.MatchingItemsPerWarehouse("CHAIR")
	total := TotalAvailability(matches)
	want := 0
	for _, rec := range store.AllItems() {
		if rec.State == "Chair" {
			want++
		}
	}
	if total != want {
		t.Fatalf("TotalAvailability = %d, want %d", total, want)
	}
	if got := TotalAvailability(nil); got != 0 {
		t.Fatalf("TotalAvailability(nil) = %d, want 0", got)
	}
}

func TestMaxAvailabilityLocation(t *testing.T) {
	engine := New(chairCatalog())
	matches := engine.MatchingItemsPerWarehouse("chair")
	warehouse, count := MaxAvailabilityLocation(matches)
	if warehouse != 2 || count != 5 {
		t.Fatalf("max = %d in warehouse %d, want 5 in warehouse 2", count, warehouse)
	}
	if _, ok := matches[warehouse]; !ok {
		t.Fatalf("reported warehouse %d is absent from the match map", warehouse)
	}
}

func TestMaxAvailabilityTieResolvesToLowestWarehouse(t *testing.T) {
	records := []catalog.StockRecord{
		stocked("Lamp", "Light", 7),
		stocked("Lamp", "Light", 7),
		stocked("Lamp", "Light", 3),
		stocked("Lamp", "Light", 3),
	}
	matches := New(catalog.New(records)).MatchingItemsPerWarehouse("lamp")
	warehouse, count := MaxAvailabilityLocation(matches)
	if warehouse != 3 || count != 2 {
		t.Fatalf("tie resolved to %d (count %d), want warehouse 3 count 2", warehouse, count)
	}
}

func TestDaysInStock(t *testing.T) {
	asOf := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
	rec := stocked("Chair", "Furniture", 1) // stocked 2024-01-01 00:00
	if got := DaysInStock(rec, asOf); got != 10 {
		t.Fatalf("DaysInStock = %d, want 10", got)
	}
	future := rec
	future.DateOfStock = asOf.Add(72 * time.Hour)
	if got := DaysInStock(future, asOf); got != -3 {
		t.Fatalf("future DaysInStock = %d, want -3", got)
	}
}

func TestCategoryMenuStableOrdinals(t *testing.T) {
	engine := New(chairCatalog())
	first := engine.CategoryMenu()
	second := engine.CategoryMenu()
	if len(first) != 2 {
		t.Fatalf("menu size = %d, want 2", len(first))
	}
	if first[1] != "Furniture" || first[2] != "Device" {
		t.Fatalf("menu = %v, want first-seen order Furniture, Device", first)
	}
	for n, category := range first {
		if second[n] != category {
			t.Fatalf("ordinal %d changed between calls: %q vs %q", n, category, second[n])
		}
	}
}
