package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/mesonic/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// Watch keeps the test tree and the task list current while meson rewrites its
// introspection files. It returns when ctx is cancelled.
func (a *App) Watch(ctx context.Context) error {
	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}

	root := a.newCollection()
	if err := a.refresh(ctx, ws, root); err != nil {
		return err
	}

	watched := make(map[string]struct{})
	if err := a.watcher.Start(ctx, a.watchPaths(ws, watched)); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() { _ = a.watcher.Stop() }()

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	go func() {
		for event := range a.watcher.Events() {
			if relevant(ws, event) {
				debouncer.Add(event.Path)
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			if err := a.refresh(ctx, ws, root); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			for _, path := range a.watchPaths(ws, watched) {
				if err := a.watcher.Add(path); err != nil {
					a.logger.Error(err)
				}
			}
		}
	}
}

func (a *App) refresh(ctx context.Context, ws *domain.Workspace, root ports.TestCollection) error {
	changes, err := a.reconciler.Reconcile(ctx, ws, root)
	if err != nil {
		return zerr.Wrap(err, "failed to load tests")
	}

	reg, err := a.collect(ctx, ws)
	if err != nil {
		return err
	}

	a.notifier.Info(fmt.Sprintf("%d tasks, %d tests (+%d -%d)",
		reg.Len(), countLeaves(root), changes.Added, changes.Removed))
	return nil
}

// watchPaths returns the directories to watch that are not in watched yet and records them.
// A configured folder is watched through its meson-info directory, an
// unconfigured one through its root so that a new build directory is noticed.
func (a *App) watchPaths(ws *domain.Workspace, watched map[string]struct{}) []string {
	var paths []string
	add := func(p string) {
		if _, ok := watched[p]; ok {
			return
		}
		watched[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, folder := range ws.Folders {
		dir, ok := a.locator.Locate(ws, folder)
		if !ok {
			add(filepath.Dir(fs.BuildPath(ws.Settings.BuildFolder, folder.Path)))
			continue
		}
		add(dir.Path)
		add(filepath.Join(dir.Path, domain.MesonInfoDirName))
	}
	return paths
}

// relevant reports whether an event touches a build directory or its introspection files.
func relevant(ws *domain.Workspace, event ports.WatchEvent) bool {
	if filepath.Base(filepath.Dir(event.Path)) == domain.MesonInfoDirName {
		return true
	}
	for _, folder := range ws.Folders {
		buildDir := fs.BuildPath(ws.Settings.BuildFolder, folder.Path)
		if event.Path == buildDir || event.Path == filepath.Join(buildDir, domain.MesonInfoDirName) {
			return true
		}
	}
	return false
}

func countLeaves(items ports.TestCollection) int {
	n := 0
	for item := range items.All() {
		if item.IsLeaf() {
			n++
			continue
		}
		n += countLeaves(item.Children)
	}
	return n
}
