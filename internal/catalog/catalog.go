// internal/catalog/catalog.go
//
// The catalog is the full set of stock records for every warehouse. It is
// loaded once at startup from a JSON dataset and never mutated afterwards,
// so every query below is a pure read.

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// DateLayout is the timestamp format used by the stock dataset.
// 24-hour clock, no timezone.
const DateLayout = "2006-01-02 15:04:05"

// StockRecord is one interchangeable unit of stock. Records carry no
// identity: two records with equal fields are indistinguishable and both
// count toward availability. State doubles as the searchable item name.
type StockRecord struct {
	State       string
	Category    string
	Warehouse   int
	DateOfStock time.Time
}

// stockJSON mirrors one record of the stock dataset on disk.
type stockJSON struct {
	State       string      `json:"state"`
	Category    string      `json:"category"`
	Warehouse   json.Number `json:"warehouse"`
	DateOfStock string      `json:"date_of_stock"`
}

// Store holds the loaded catalog and its derived groupings.
type Store struct {
	items       []StockRecord
	warehouses  []int    // distinct ids, ascending
	categories  []string // distinct categories, first-seen order
	byWarehouse map[int][]StockRecord
	byCategory  map[string][]StockRecord // keyed by lower-cased category
}

// Load reads the stock dataset at path. Any unreadable or malformed record
// fails the whole load; the application cannot run without a catalog.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read stock dataset: %w", err)
	}
	var rows []stockJSON
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("catalog: parse stock dataset: %w", err)
	}
	records := make([]StockRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, fmt.Errorf("catalog: record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return New(records), nil
}

func (r stockJSON) toRecord() (StockRecord, error) {
	if strings.TrimSpace(r.State) == "" {
		return StockRecord{}, fmt.Errorf("missing state")
	}
	if strings.TrimSpace(r.Category) == "" {
		return StockRecord{}, fmt.Errorf("missing category")
	}
	warehouse, err := r.Warehouse.Int64()
	if err != nil {
		return StockRecord{}, fmt.Errorf("warehouse %q is not an integer", r.Warehouse.String())
	}
	stocked, err := time.Parse(DateLayout, r.DateOfStock)
	if err != nil {
		return StockRecord{}, fmt.Errorf("date_of_stock %q: %w", r.DateOfStock, err)
	}
	return StockRecord{
		State:       r.State,
		Category:    r.Category,
		Warehouse:   int(warehouse),
		DateOfStock: stocked,
	}, nil
}

// New builds a store over an already-parsed record list. Dataset order is
// preserved; groupings are computed once here.
func New(records []StockRecord) *Store {
	s := &Store{
		items:       records,
		byWarehouse: make(map[int][]StockRecord),
		byCategory:  make(map[string][]StockRecord),
	}
	seenCategory := make(map[string]struct{})
	for _, rec := range records {
		s.byWarehouse[rec.Warehouse] = append(s.byWarehouse[rec.Warehouse], rec)
		key := strings.ToLower(rec.Category)
		if _, ok := seenCategory[key]; !ok {
			seenCategory[key] = struct{}{}
			s.categories = append(s.categories, rec.Category)
		}
		s.byCategory[key] = append(s.byCategory[key], rec)
	}
	for w := range s.byWarehouse {
		s.warehouses = append(s.warehouses, w)
	}
	sort.Ints(s.warehouses)
	return s
}

// AllItems returns the full catalog in dataset order.
func (s *Store) AllItems() []StockRecord {
	return s.items
}

// Warehouses returns the distinct warehouse ids in ascending order.
func (s *Store) Warehouses() []int {
	return s.warehouses
}

// Categories returns the distinct categories in first-seen dataset order.
// Menu ordinals depend on this order staying stable for a loaded catalog.
func (s *Store) Categories() []string {
	return s.categories
}

// ItemsByWarehouse returns every record stocked in warehouse w. An unknown
// warehouse yields an empty slice, not an error.
func (s *Store) ItemsByWarehouse(w int) []StockRecord {
	return s.byWarehouse[w]
}

// ItemsByCategory returns every record whose category matches c
// case-insensitively.
func (s *Store) ItemsByCategory(c string) []StockRecord {
	return s.byCategory[strings.ToLower(c)]
}
