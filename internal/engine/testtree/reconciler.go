// Package testtree keeps a host test collection in sync with introspected tests.
package testtree

import (
	"context"
	"fmt"

	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Changes counts the mutations applied by one reconciliation pass.
type Changes struct {
	Added   int
	Removed int
}

// Empty reports whether the pass changed nothing.
func (c Changes) Empty() bool {
	return c.Added == 0 && c.Removed == 0
}

// Reconciler diffs a test collection against the tests reported by meson.
// Items are only added and deleted, so untouched items keep their identity.
type Reconciler struct {
	factory       ports.IntrospectorFactory
	locator       ports.BuildLocator
	newCollection ports.TestCollectionFactory
	logger        ports.Logger
	notifier      ports.Notifier
}

// NewReconciler creates a new Reconciler.
func NewReconciler(
	factory ports.IntrospectorFactory,
	locator ports.BuildLocator,
	newCollection ports.TestCollectionFactory,
	logger ports.Logger,
	notifier ports.Notifier,
) *Reconciler {
	return &Reconciler{
		factory:       factory,
		locator:       locator,
		newCollection: newCollection,
		logger:        logger,
		notifier:      notifier,
	}
}

// Reconcile updates root to match the tests of ws.
//
// A single folder workspace keeps its tests directly in root. With several
// folders root holds one item per folder, keyed by the folder path.
// A folder that fails to introspect keeps its previous items.
// Only cancellation is returned as an error.
func (r *Reconciler) Reconcile(ctx context.Context, ws *domain.Workspace, root ports.TestCollection) (Changes, error) {
	intro := r.factory(ws.Settings)

	var changes Changes
	if len(ws.Folders) == 1 {
		err := r.reconcileFolder(ctx, intro, ws, ws.Folders[0], root, &changes)
		return changes, err
	}

	for _, folder := range ws.Folders {
		if err := ctx.Err(); err != nil {
			return changes, err
		}
		if err := r.reconcileGroup(ctx, intro, ws, folder, root, &changes); err != nil {
			return changes, err
		}
	}

	var stale []string
	for item := range root.All() {
		if item.Children == nil || item.Children.Len() == 0 || !ws.HasFolder(item.ID) {
			stale = append(stale, item.ID)
		}
	}
	for _, id := range stale {
		root.Delete(id)
		changes.Removed++
	}

	return changes, nil
}

func (r *Reconciler) reconcileFolder(
	ctx context.Context,
	intro ports.Introspector,
	ws *domain.Workspace,
	folder domain.WorkspaceFolder,
	items ports.TestCollection,
	changes *Changes,
) error {
	dir, ok := r.locator.Locate(ws, folder)
	if !ok {
		r.sync(items, nil, dir, changes)
		return nil
	}

	tests, err := intro.Tests(ctx, dir.Path)
	if err != nil {
		return r.folderFailed(ctx, folder, err)
	}

	r.sync(items, tests, dir, changes)
	return nil
}

func (r *Reconciler) reconcileGroup(
	ctx context.Context,
	intro ports.Introspector,
	ws *domain.Workspace,
	folder domain.WorkspaceFolder,
	root ports.TestCollection,
	changes *Changes,
) error {
	dir, ok := r.locator.Locate(ws, folder)
	if !ok {
		if _, exists := root.Get(folder.Path); exists {
			root.Delete(folder.Path)
			changes.Removed++
		}
		return nil
	}

	var (
		info  *domain.ProjectInfo
		tests []domain.TestDescriptor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		info, err = intro.ProjectInfo(gctx, dir.Path)
		return err
	})
	g.Go(func() (err error) {
		tests, err = intro.Tests(gctx, dir.Path)
		return err
	})
	if err := g.Wait(); err != nil {
		return r.folderFailed(ctx, folder, err)
	}

	node, exists := root.Get(folder.Path)
	if !exists {
		label := folder.Name
		if info != nil && info.DescriptiveName != "" {
			label = info.DescriptiveName
		}
		node = &ports.TestItem{
			ID:       folder.Path,
			Label:    label,
			Folder:   folder,
			BuildDir: dir.Path,
			Children: r.newCollection(),
		}
		root.Add(node)
		changes.Added++
	}

	r.sync(node.Children, tests, dir, changes)
	return nil
}

// sync deletes items without a matching test and adds tests without an item.
func (r *Reconciler) sync(items ports.TestCollection, tests []domain.TestDescriptor, dir domain.BuildDirectory, changes *Changes) {
	fresh := make(map[string]struct{}, len(tests))
	for i := range tests {
		fresh[tests[i].Name] = struct{}{}
	}

	var stale []string
	for item := range items.All() {
		if _, ok := fresh[item.ID]; !ok {
			stale = append(stale, item.ID)
		}
	}
	for _, id := range stale {
		items.Delete(id)
		changes.Removed++
	}

	for i := range tests {
		name := tests[i].Name
		if _, ok := items.Get(name); ok {
			continue
		}
		items.Add(&ports.TestItem{
			ID:       name,
			Label:    name,
			Folder:   dir.Folder,
			BuildDir: dir.Path,
			Children: r.newCollection(),
		})
		changes.Added++
	}
}

func (r *Reconciler) folderFailed(ctx context.Context, folder domain.WorkspaceFolder, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	r.logger.Error(zerr.With(zerr.Wrap(err, "failed to load tests"), "folder", folder.Path))
	r.notifier.Error(fmt.Sprintf("Could not load tests of %s", folder.Name))
	return nil
}
