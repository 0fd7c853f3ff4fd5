package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonic/internal/adapters/collection" //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/adapters/linear"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/adapters/notify"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/adapters/results"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/adapters/shell"      //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/mesonic/internal/engine/tasks"
	"go.trai.ch/mesonic/internal/engine/testrun"
	"go.trai.ch/mesonic/internal/engine/testtree"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.NodeID,
			shell.NodeID,
			tasks.NodeID,
			testtree.NodeID,
			testrun.NodeID,
			results.NodeID,
			watcher.NodeID,
			collection.NodeID,
			logger.NodeID,
			notify.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			linear.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log, Renderer: renderer}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.BuildLocator](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.ProcessRunner](ctx)
	if err != nil {
		return nil, err
	}

	aggregator, err := graft.Dep[*tasks.Aggregator](ctx)
	if err != nil {
		return nil, err
	}

	reconciler, err := graft.Dep[*testtree.Reconciler](ctx)
	if err != nil {
		return nil, err
	}

	driver, err := graft.Dep[*testrun.Driver](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ResultStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
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

	return New(loader, locator, runner, aggregator, reconciler, driver, store, w, newCollection, log, notifier), nil
}
