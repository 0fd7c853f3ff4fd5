package tasks

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonic/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/meson"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/notify" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/core/ports"
)

// NodeID is the unique identifier for the task aggregator Graft node.
const NodeID graft.ID = "engine.tasks"

func init() {
	graft.Register(graft.Node[*Aggregator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			meson.NodeID,
			fs.NodeID,
			logger.NodeID,
			notify.NodeID,
		},
		Run: func(ctx context.Context) (*Aggregator, error) {
			factory, err := graft.Dep[ports.IntrospectorFactory](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.BuildLocator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			notifier, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}

			return NewAggregator(factory, locator, log, notifier), nil
		},
	})
}
