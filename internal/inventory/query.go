// internal/inventory/query.go
//
// The query engine derives everything the shell reports from the catalog:
// per-warehouse match sets for a searched item name, availability totals,
// the maximum-availability location, days in stock and the category menu.
//
// Warehouses always iterate in ascending id order and categories in
// first-seen catalog order, so menu ordinals and tie-breaks are
// reproducible for a loaded catalog.

package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/riteshp/the-warehouse/internal/catalog"
)

// Engine answers inventory queries over a loaded catalog store.
type Engine struct {
	store *catalog.Store
}

// New creates an engine over the given catalog.
func New(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Store exposes the underlying catalog for listings.
func (e *Engine) Store() *catalog.Store {
	return e.store
}

// MatchingItemsPerWarehouse maps each warehouse to the records whose state
// equals name case-insensitively. Warehouses without a match are omitted.
func (e *Engine) MatchingItemsPerWarehouse(name string) map[int][]catalog.StockRecord {
	matches := make(map[int][]catalog.StockRecord)
	for _, w := range e.store.Warehouses() {
		var found []catalog.StockRecord
		for _, rec := range e.store.ItemsByWarehouse(w) {
			if strings.EqualFold(rec.State, name) {
				found = append(found, rec)
			}
		}
		if len(found) > 0 {
			matches[w] = found
		}
	}
	return matches
}

// TotalAvailability sums the match counts across all warehouses in the
// match map. Zero for an empty map.
func TotalAvailability(matches map[int][]catalog.StockRecord) int {
	total := 0
	for _, records := range matches {
		total += len(records)
	}
	return total
}

// Warehouses returns the keys of a match map in ascending order.
func Warehouses(matches map[int][]catalog.StockRecord) []int {
	ids := make([]int, 0, len(matches))
	for w := range matches {
		ids = append(ids, w)
	}
	sort.Ints(ids)
	return ids
}

// MaxAvailabilityLocation returns the warehouse holding the most matches
// and its count. Ties resolve to the lowest warehouse id. Callers must not
// invoke it with an empty map.
func MaxAvailabilityLocation(matches map[int][]catalog.StockRecord) (int, int) {
	warehouse, maxCount := 0, 0
	for _, w := range Warehouses(matches) {
		if len(matches[w]) > maxCount {
			warehouse = w
			maxCount = len(matches[w])
		}
	}
	return warehouse, maxCount
}

// DaysInStock returns the whole days between asOf and the record's stock
// date, truncated toward zero. Future-dated stock yields a negative value;
// callers display it unmodified.
func DaysInStock(rec catalog.StockRecord, asOf time.Time) int {
	return int(asOf.Sub(rec.DateOfStock).Hours() / 24)
}

// CategoryMenu assigns each distinct category a 1-based ordinal in
// first-seen catalog order. Stable across calls for a loaded catalog, so
// "choice N" maps back to the category shown at position N.
func (e *Engine) CategoryMenu() map[int]string {
	menu := make(map[int]string)
	for i, c := range e.store.Categories() {
		menu[i+1] = c
	}
	return menu
}
