package dataset_cache

import (
	"sync"
	"time"

	"github.com/rash6677/kpi-optimisation-dashboard/models"
)

// ── Raw orders table cache ───────────────────────────────────────────────────
// The orders table is loaded once per process lifetime and is read-only for
// the rest of the run. Unlike a TTL cache there is no expiry: every dashboard
// request filters and aggregates this same immutable slice.

type datasetEntry struct {
	orders       []models.Order
	hasOrderHour bool
	loadedAt     time.Time
}

var (
	mu    sync.RWMutex
	entry *datasetEntry
)

// Get returns the cached table, whether the order_hour column exists, and
// whether anything has been loaded yet. Callers must not mutate the slice.
func Get() (orders []models.Order, hasOrderHour bool, ok bool) {
	mu.RLock()
	defer mu.RUnlock()
	if entry == nil {
		return nil, false, false
	}
	return entry.orders, entry.hasOrderHour, true
}

func Set(orders []models.Order, hasOrderHour bool) {
	mu.Lock()
	defer mu.Unlock()
	entry = &datasetEntry{
		orders:       orders,
		hasOrderHour: hasOrderHour,
		loadedAt:     time.Now(),
	}
}

// LoadedAt reports when the table was read, zero if not loaded.
func LoadedAt() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	if entry == nil {
		return time.Time{}
	}
	return entry.loadedAt
}

// Invalidate drops the cached table so the next load hits the store again.
// Only used by tests and the seeder; the server never calls it.
func Invalidate() {
	mu.Lock()
	entry = nil
	mu.Unlock()
}
