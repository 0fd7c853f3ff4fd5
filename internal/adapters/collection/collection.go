// Package collection provides the in-memory test tree used by the CLI host.
package collection

import (
	"iter"
	"slices"
	"sync"

	"go.trai.ch/mesonic/internal/core/ports"
)

var _ ports.TestCollection = (*Collection)(nil)

// Collection is an ordered, concurrency-safe ports.TestCollection.
type Collection struct {
	mu    sync.RWMutex
	order []string
	items map[string]*ports.TestItem
}

// New creates an empty Collection.
func New() *Collection {
	return &Collection{items: make(map[string]*ports.TestItem)}
}

// Factory returns a ports.TestCollectionFactory producing Collections.
func Factory() ports.TestCollectionFactory {
	return func() ports.TestCollection { return New() }
}

// Get returns the item with the given ID.
func (c *Collection) Get(id string) (*ports.TestItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// Add inserts an item. An existing item with the same ID is replaced in place,
// keeping its position.
func (c *Collection) Add(item *ports.TestItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[item.ID]; !ok {
		c.order = append(c.order, item.ID)
	}
	c.items[item.ID] = item
}

// Delete removes the item with the given ID if present.
func (c *Collection) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
}

// All iterates over a snapshot of the items in insertion order.
// Mutating the collection during iteration is allowed.
func (c *Collection) All() iter.Seq[*ports.TestItem] {
	c.mu.RLock()
	snapshot := make([]*ports.TestItem, 0, len(c.order))
	for _, id := range c.order {
		snapshot = append(snapshot, c.items[id])
	}
	c.mu.RUnlock()

	return func(yield func(*ports.TestItem) bool) {
		for _, item := range snapshot {
			if !yield(item) {
				return
			}
		}
	}
}

// Len returns the number of items.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
