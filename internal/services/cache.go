package services

import (
	"sync"

	"salonbook/internal/models"
)

// listCache is the client-side copy of the services collection. It is
// mutated only after a confirmed successful remote response, and only from
// the sequence of UI-driven calls; the mutex keeps snapshots consistent if
// a caller ever overlaps operations. The cache and the remote store can
// diverge silently until the next Replace.
type listCache struct {
	mu    sync.Mutex
	items []models.Service
}

// Replace swaps the whole cached list for a fresh read of the collection.
func (c *listCache) Replace(items []models.Service) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]models.Service(nil), items...)
}

// Append adds a newly created record to the end of the cached list.
func (c *listCache) Append(item models.Service) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Patch overwrites name and price of the cached entry with the given
// identity, leaving every other field untouched. Reports whether a
// matching entry existed.
func (c *listCache) Patch(id, name, price string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Name = name
			c.items[i].Price = price
			return true
		}
	}
	return false
}

// Remove deletes the cached entry with the given identity. Reports whether
// a matching entry existed.
func (c *listCache) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the cached list.
func (c *listCache) Snapshot() []models.Service {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Service(nil), c.items...)
}
