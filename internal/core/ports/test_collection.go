package ports

import (
	"iter"

	"go.trai.ch/mesonic/internal/core/domain"
)

// TestItem is a node of the host-visible test tree.
// Folder nodes group the tests of one workspace folder; leaves are individual tests.
type TestItem struct {
	// ID identifies the item among its siblings.
	ID string
	// Label is the human readable name.
	Label string
	// Folder is the workspace folder the item belongs to.
	Folder domain.WorkspaceFolder
	// BuildDir is the build directory the item was discovered in.
	BuildDir string
	// Children holds nested items. Leaves have an empty collection.
	Children TestCollection
}

// IsLeaf reports whether the item has no children.
func (i *TestItem) IsLeaf() bool {
	return i.Children == nil || i.Children.Len() == 0
}

// TestCollection is a host-owned, mutable set of test items keyed by ID.
// Reconciliation only ever adds and deletes items; it never replaces one in place.
//
//go:generate mockgen -source=test_collection.go -destination=mocks/mock_test_collection.go -package=mocks
type TestCollection interface {
	// Get returns the item with the given ID.
	Get(id string) (*TestItem, bool)
	// Add inserts an item. An existing item with the same ID is replaced.
	Add(item *TestItem)
	// Delete removes the item with the given ID if present.
	Delete(id string)
	// All iterates over the items in insertion order.
	All() iter.Seq[*TestItem]
	// Len returns the number of items.
	Len() int
}

// TestCollectionFactory creates empty child collections for new items.
type TestCollectionFactory func() TestCollection
