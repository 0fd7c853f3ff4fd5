package testrun

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonic/internal/adapters/launch"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/meson"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/notify"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonic/internal/core/ports"
)

// NodeID is the unique identifier for the test driver Graft node.
const NodeID graft.ID = "engine.testrun"

func init() {
	graft.Register(graft.Node[*Driver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			meson.NodeID,
			telemetry.NodeID,
			launch.NodeID,
			logger.NodeID,
			notify.NodeID,
		},
		Run: func(ctx context.Context) (*Driver, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[ports.IntrospectorFactory](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			launcher, err := graft.Dep[ports.DebugLauncher](ctx)
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

			return NewDriver(runner, factory, tracer, launcher, log, notifier), nil
		},
	})
}
