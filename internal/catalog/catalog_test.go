package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeDataset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

const sampleDataset = `[
  {"state": "Chair", "category": "Furniture", "warehouse": 2, "date_of_stock": "2024-03-01 10:30:00"},
  {"state": "Router", "category": "Device", "warehouse": 1, "date_of_stock": "2024-01-15 08:00:00"},
  {"state": "Chair", "category": "Furniture", "warehouse": 1, "date_of_stock": "2024-02-20 16:45:00"},
  {"state": "Monitor", "category": "device", "warehouse": 4, "date_of_stock": "2023-12-31 23:59:59"}
]`

func TestLoadParsesRecords(t *testing.T) {
	store, err := Load(writeDataset(t, sampleDataset))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	items := store.AllItems()
	if len(items) != 4 {
		t.Fatalf("len(items) = %d, want 4", len(items))
	}
	first := items[0]
	if first.State != "Chair" || first.Category != "Furniture" || first.Warehouse != 2 {
		t.Fatalf("unexpected first record: %+v", first)
	}
	want := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	if !first.DateOfStock.Equal(want) {
		t.Fatalf("DateOfStock = %v, want %v", first.DateOfStock, want)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for a missing dataset")
	}
}

func TestLoadRejectsMalformedRecords(t *testing.T) {
	cases := map[string]string{
		"bad json":      `[{`,
		"bad warehouse": `[{"state": "Chair", "category": "Furniture", "warehouse": "two", "date_of_stock": "2024-03-01 10:30:00"}]`,
		"bad date":      `[{"state": "Chair", "category": "Furniture", "warehouse": 2, "date_of_stock": "01.03.2024"}]`,
		"missing state": `[{"category": "Furniture", "warehouse": 2, "date_of_stock": "2024-03-01 10:30:00"}]`,
	}
	for name, body := range cases {
		if _, err := Load(writeDataset(t, body)); err == nil {
			t.Fatalf("%s: expected load to fail", name)
		}
	}
}

func TestWarehousesAscending(t *testing.T) {
	store, err := Load(writeDataset(t, sampleDataset))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := store.Warehouses()
	want := []int{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("warehouses = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("warehouses = %v, want %v", got, want)
		}
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	store, err := Load(writeDataset(t, sampleDataset))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := store.Categories()
	// "device" folds into "Device"; the first-seen spelling wins.
	want := []string{"Furniture", "Device"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}

func TestWarehousePartitionCoversCatalog(t *testing.T) {
	store, err := Load(writeDataset(t, sampleDataset))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	sum := 0
	for _, w := range store.Warehouses() {
		sum += len(store.ItemsByWarehouse(w))
	}
	if sum != len(store.AllItems()) {
		t.Fatalf("partition sum = %d, want %d", sum, len(store.AllItems()))
	}
	if got := store.ItemsByWarehouse(99); len(got) != 0 {
		t.Fatalf("unknown warehouse returned %d items", len(got))
	}
}

func TestItemsByCategoryCaseInsensitive(t *testing.T) {
	store, err := Load(writeDataset(t, sampleDataset))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	devices := store.ItemsByCategory("DEVICE")
	if len(devices) != 2 {
		t.Fatalf("len(devices) = %d, want 2", len(devices))
	}
	for _, rec := range devices {
		if !strings.EqualFold(rec.Category, "device") {
			t.Fatalf("unexpected category %q", rec.Category)
		}
	}
	if got := store.ItemsByCategory("toy"); len(got) != 0 {
		t.Fatalf("unknown category returned %d items", len(got))
	}
}
