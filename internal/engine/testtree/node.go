package testtree

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonic/internal/adapters/collection" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/fs"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/meson"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/notify"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/core/ports"
)

// NodeID is the unique identifier for the test tree reconciler Graft node.
const NodeID graft.ID = "engine.testtree"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			meson.NodeID,
			fs.NodeID,
			collection.NodeID,
			logger.NodeID,
			notify.NodeID,
		},
		Run: func(ctx context.Context) (*Reconciler, error) {
			factory, err := graft.Dep[ports.IntrospectorFactory](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.BuildLocator](ctx)
			if err != nil {
				return nil, err
			}

			newCollection, err := graft.Dep[ports.TestCollectionFactory](ctx)
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

			return NewReconciler(factory, locator, newCollection, log, notifier), nil
		},
	})
}
