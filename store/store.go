// Package store holds the canonical in-memory collections for all site
// operations. Every collection is copy-on-write: mutations replace the whole
// slice, so a reader holding a prior snapshot keeps a consistent view. The
// process memory is the system of record; there is no durable storage.
package store

import (
	"sync"

	"p9e.in/sitehub/models"
)

// Collection is one copy-on-write entity collection. Writers build a new
// slice from the previous snapshot and swap it in whole; elements must never
// be mutated in place.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

// List returns the current snapshot. Callers must treat it as read-only.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Replace swaps the whole collection for next.
func (c *Collection[T]) Replace(next []T) {
	c.mu.Lock()
	c.items = next
	c.mu.Unlock()
}

// Mutate runs fn under the collection's write lock, serializing the
// read-validate-replace sequence for concurrent callers. fn receives the
// current snapshot and returns the replacement; returning an error leaves
// the collection untouched.
func (c *Collection[T]) Mutate(fn func(current []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := fn(c.items)
	if err != nil {
		return err
	}
	c.items = next
	return nil
}

// Memberships maps a user id to the set of site ids the user belongs to.
// Like the entity collections it is copy-on-write: the whole map is swapped
// on every change.
type Memberships struct {
	mu sync.RWMutex
	m  map[string][]string
}

// SitesFor returns the site ids the user belongs to, falling back to the
// "default" entry when the user has no explicit memberships.
func (ms *Memberships) SitesFor(userID string) []string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if ids, ok := ms.m[userID]; ok {
		return ids
	}
	return ms.m["default"]
}

// Snapshot returns the full membership map. Callers must not mutate it.
func (ms *Memberships) Snapshot() map[string][]string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.m
}

// Add inserts (userID, siteID) and reports whether the map changed. Adding
// an existing pair is a no-op, which makes enrollment idempotent.
func (ms *Memberships) Add(userID, siteID string) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	current := ms.m[userID]
	for _, id := range current {
		if id == siteID {
			return false
		}
	}
	next := make(map[string][]string, len(ms.m)+1)
	for k, v := range ms.m {
		next[k] = v
	}
	next[userID] = append(append([]string(nil), current...), siteID)
	ms.m = next
	return true
}

// Replace swaps the whole membership map.
func (ms *Memberships) Replace(next map[string][]string) {
	ms.mu.Lock()
	ms.m = next
	ms.mu.Unlock()
}

// Store owns every collection. Entities reference each other by id only;
// relationships are resolved on read.
type Store struct {
	Sites            Collection[models.Site]
	Memberships      Memberships
	Attendance       Collection[models.AttendanceRecord]
	MaterialRequests Collection[models.MaterialRequest]
	Tasks            Collection[models.Task]
	Stock            Collection[models.StockItem]
	Tools            Collection[models.Tool]
	ToolRequests     Collection[models.ToolRequest]
	Permits          Collection[models.PermitRequest]
	PettyCash        Collection[models.PettyCashEntry]
	GSTBills         Collection[models.GSTBill]
	Consumption      Collection[models.ConsumptionSnapshot]
	WorkLogs         Collection[models.WorkLog]
	WorkPhotos       Collection[models.WorkPhoto]
	Contractors      Collection[models.Contractor]
}

// New returns an empty store.
func New() *Store {
	s := &Store{}
	s.Memberships.m = map[string][]string{}
	return s
}
