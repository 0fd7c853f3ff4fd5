// Package app implements the application layer for mesonic.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/mesonic/internal/engine/tasks"
	"go.trai.ch/mesonic/internal/engine/testrun"
	"go.trai.ch/mesonic/internal/engine/testtree"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	locator       ports.BuildLocator
	runner        ports.ProcessRunner
	aggregator    *tasks.Aggregator
	reconciler    *testtree.Reconciler
	driver        *testrun.Driver
	store         ports.ResultStore
	watcher       ports.Watcher
	newCollection ports.TestCollectionFactory
	logger        ports.Logger
	notifier      ports.Notifier

	workDir string
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	locator ports.BuildLocator,
	runner ports.ProcessRunner,
	aggregator *tasks.Aggregator,
	reconciler *testtree.Reconciler,
	driver *testrun.Driver,
	store ports.ResultStore,
	watcher ports.Watcher,
	newCollection ports.TestCollectionFactory,
	log ports.Logger,
	notifier ports.Notifier,
) *App {
	return &App{
		configLoader:  loader,
		locator:       locator,
		runner:        runner,
		aggregator:    aggregator,
		reconciler:    reconciler,
		driver:        driver,
		store:         store,
		watcher:       watcher,
		newCollection: newCollection,
		logger:        log,
		notifier:      notifier,
		workDir:       ".",
		stdout:        os.Stdout,
		stderr:        os.Stderr,
	}
}

// WithWorkDir sets the directory the workspace is discovered from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithOutput redirects the output of listings and streamed tasks.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

func (a *App) loadWorkspace() (*domain.Workspace, error) {
	ws, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return ws, nil
}

// selectFolders returns the folders of ws matching name, or all folders when name is empty.
// A folder matches by name or by path.
func selectFolders(ws *domain.Workspace, name string) ([]domain.WorkspaceFolder, error) {
	if name == "" {
		return ws.Folders, nil
	}
	for _, f := range ws.Folders {
		if f.Name == name || f.Path == name {
			return []domain.WorkspaceFolder{f}, nil
		}
	}
	return nil, zerr.With(domain.ErrUnknownFolder, "folder", name)
}

// collect aggregates the tasks of ws, turning cancellation into the caller's error.
func (a *App) collect(ctx context.Context, ws *domain.Workspace) (*tasks.Registry, error) {
	reg, err := a.aggregator.Collect(ctx, ws)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to collect tasks")
	}
	return reg, nil
}
