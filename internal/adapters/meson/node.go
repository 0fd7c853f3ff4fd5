package meson

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonic/internal/adapters/shell"
	"go.trai.ch/mesonic/internal/core/ports"
)

// NodeID is the unique identifier for the introspector factory Graft node.
const NodeID graft.ID = "adapter.introspector"

func init() {
	graft.Register(graft.Node[ports.IntrospectorFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.IntrospectorFactory, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(runner, DefaultCacheSize)
		},
	})
}
