package launch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonic/internal/core/ports"
)

// NodeID is the unique identifier for the debug launcher Graft node.
const NodeID graft.ID = "adapter.debug_launcher"

func init() {
	graft.Register(graft.Node[ports.DebugLauncher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DebugLauncher, error) {
			return NewEmitter(nil), nil
		},
	})
}
