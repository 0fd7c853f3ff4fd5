package collection

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonic/internal/core/ports"
)

// NodeID is the unique identifier for the test collection factory Graft node.
const NodeID graft.ID = "adapter.test_collection"

func init() {
	graft.Register(graft.Node[ports.TestCollectionFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TestCollectionFactory, error) {
			return Factory(), nil
		},
	})
}
