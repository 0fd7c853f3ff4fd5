package app

import (
	"context"
	"strings"

	"go.trai.ch/mesonic/internal/adapters/report" //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/mesonic/internal/engine/testrun"
	"go.trai.ch/zerr"
)

// TestOptions configures the Test method.
type TestOptions struct {
	// Verbose prints the output of passing tests as well.
	Verbose bool
}

// Test runs the selected tests, or all tests when selection is empty.
func (a *App) Test(ctx context.Context, selection []string, opts TestOptions) error {
	ws, root, err := a.loadTests(ctx)
	if err != nil {
		return err
	}

	selected, err := a.selectTests(root, selection)
	if err != nil {
		return err
	}

	recorder := report.NewRecorder(a.stdout, a.store, a.logger, report.WithVerbose(opts.Verbose))
	if err := a.driver.Run(ctx, ws, testrun.Expand(selected), recorder); err != nil {
		return zerr.Wrap(err, "test run aborted")
	}

	if recorder.Failures() > 0 {
		return domain.ErrTestsFailed
	}
	return nil
}

// Debug builds and debug-launches the selected tests.
func (a *App) Debug(ctx context.Context, selection []string) error {
	ws, root, err := a.loadTests(ctx)
	if err != nil {
		return err
	}

	selected, err := a.selectTests(root, selection)
	if err != nil {
		return err
	}

	if err := a.driver.Debug(ctx, ws, testrun.Expand(selected)); err != nil {
		return zerr.Wrap(err, "debug session aborted")
	}
	return nil
}

// selectTests resolves names against the tree. A name matches a top-level item
// by ID, label or folder name, any leaf by ID, or a leaf as "<folder>/<test>".
func (a *App) selectTests(root ports.TestCollection, names []string) ([]*ports.TestItem, error) {
	if len(names) == 0 {
		var all []*ports.TestItem
		for item := range root.All() {
			all = append(all, item)
		}
		return all, nil
	}

	var selected []*ports.TestItem
	for _, name := range names {
		matches := matchTests(root, name)
		if len(matches) == 0 {
			a.notifier.Error("Unknown test " + name)
			return nil, zerr.With(domain.ErrTestNotFound, "test", name)
		}
		selected = append(selected, matches...)
	}
	return selected, nil
}

func matchTests(root ports.TestCollection, name string) []*ports.TestItem {
	var matches []*ports.TestItem
	folderName, testName, qualified := strings.Cut(name, "/")

	for item := range root.All() {
		if item.IsLeaf() {
			if item.ID == name {
				matches = append(matches, item)
			}
			continue
		}

		if item.ID == name || item.Label == name || item.Folder.Name == name {
			matches = append(matches, item)
			continue
		}
		for child := range item.Children.All() {
			if child.ID == name || (qualified && item.Folder.Name == folderName && child.ID == testName) {
				matches = append(matches, child)
			}
		}
	}
	return matches
}
