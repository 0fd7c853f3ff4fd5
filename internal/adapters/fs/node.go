package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonic/internal/core/ports"
)

// NodeID is the unique identifier for the build locator Graft node.
const NodeID graft.ID = "adapter.build_locator"

func init() {
	graft.Register(graft.Node[ports.BuildLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildLocator, error) {
			return NewLocator(), nil
		},
	})
}
