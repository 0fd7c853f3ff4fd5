// Package testrun runs and debug-launches selected tests.
package testrun

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/mesonic/internal/engine/tasks"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// BuildFailedNotice is shown once per run when meson could not rebuild the tests.
const BuildFailedNotice = "Failed to build tests. Results will not be updated"

// Driver executes test items through meson.
type Driver struct {
	runner   ports.ProcessRunner
	factory  ports.IntrospectorFactory
	tracer   ports.Tracer
	launcher ports.DebugLauncher
	logger   ports.Logger
	notifier ports.Notifier
	now      func() time.Time
}

// NewDriver creates a new Driver.
func NewDriver(
	runner ports.ProcessRunner,
	factory ports.IntrospectorFactory,
	tracer ports.Tracer,
	launcher ports.DebugLauncher,
	logger ports.Logger,
	notifier ports.Notifier,
) *Driver {
	return &Driver{
		runner:   runner,
		factory:  factory,
		tracer:   tracer,
		launcher: launcher,
		logger:   logger,
		notifier: notifier,
		now:      time.Now,
	}
}

// Expand returns items followed by their descendants, depth first.
// Items reachable more than once are returned once.
func Expand(items []*ports.TestItem) []*ports.TestItem {
	seen := make(map[*ports.TestItem]struct{})
	var out []*ports.TestItem

	var walk func(item *ports.TestItem)
	walk = func(item *ports.TestItem) {
		if _, ok := seen[item]; ok {
			return
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if item.Children == nil {
			return
		}
		for child := range item.Children.All() {
			walk(child)
		}
	}
	for _, item := range items {
		walk(item)
	}
	return out
}

// Run executes every leaf in items with meson test and records the outcome in run.
// Container items are marked as passed without running anything. The run
// is ended when Run returns.
func (d *Driver) Run(ctx context.Context, ws *domain.Workspace, items []*ports.TestItem, run ports.TestRun) error {
	defer run.End()

	notified := false
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !item.IsLeaf() {
			run.Passed(item, 0)
			continue
		}

		buildFailed, err := d.runLeaf(ctx, ws.Settings, item, run)
		if err != nil {
			return err
		}
		if buildFailed && !notified {
			d.notifier.Error(BuildFailedNotice)
			notified = true
		}
	}
	return nil
}

func (d *Driver) runLeaf(ctx context.Context, settings domain.Settings, item *ports.TestItem, run ports.TestRun) (bool, error) {
	run.Started(item)

	ctx, span := d.tracer.Start(ctx, item.Label)
	defer span.End()
	span.SetAttribute("test.id", item.ID)
	span.SetAttribute("test.build_dir", item.BuildDir)

	start := d.now()
	res, err := d.runner.Run(ctx, ports.Command{
		Name:    mesonPath(settings),
		Args:    []string{"test", "-C", item.BuildDir, "--print-errorlog", item.ID},
		Dir:     item.Folder.Path,
		Timeout: settings.Timeout,
	})
	duration := d.now().Sub(start)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}

	var stdout string
	if res != nil {
		stdout = string(res.Stdout)
	}

	buildFailed := false
	switch {
	case err == nil:
		run.Passed(item, duration)
	case res != nil && res.ExitCode == domain.ExitCodeBuildFailed:
		span.RecordError(err)
		run.Errored(item, domain.ErrBuildFailed.Error(), duration)
		buildFailed = true
	default:
		span.RecordError(err)
		run.Failed(item, failureMessage(res, err), duration)
	}

	run.AppendOutput(item, stdout)
	return buildFailed, nil
}

func failureMessage(res *ports.Result, err error) string {
	if res != nil {
		if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
			return msg
		}
	}
	return err.Error()
}

// Debug builds the targets the selected tests depend on and launches one debug
// session per test. The targets of one folder are built with a single compile
// call. A folder whose build fails launches nothing.
func (d *Driver) Debug(ctx context.Context, ws *domain.Workspace, items []*ports.TestItem) error {
	intro := d.factory(ws.Settings)

	for _, group := range groupByBuildDir(items) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.debugGroup(ctx, intro, ws, group); err != nil {
			return err
		}
	}
	return nil
}

type leafGroup struct {
	folder   domain.WorkspaceFolder
	buildDir string
	leaves   []*ports.TestItem
}

func groupByBuildDir(items []*ports.TestItem) []*leafGroup {
	var groups []*leafGroup
	index := make(map[string]*leafGroup)
	for _, item := range items {
		if !item.IsLeaf() {
			continue
		}
		g, ok := index[item.BuildDir]
		if !ok {
			g = &leafGroup{folder: item.Folder, buildDir: item.BuildDir}
			index[item.BuildDir] = g
			groups = append(groups, g)
		}
		g.leaves = append(g.leaves, item)
	}
	return groups
}

func (d *Driver) debugGroup(ctx context.Context, intro ports.Introspector, ws *domain.Workspace, group *leafGroup) error {
	var (
		descriptors []domain.TestDescriptor
		targets     []domain.Target
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		descriptors, err = intro.Tests(gctx, group.buildDir)
		return err
	})
	g.Go(func() (err error) {
		targets, err = intro.Targets(gctx, group.buildDir)
		return err
	})
	if err := g.Wait(); err != nil {
		return d.groupFailed(ctx, group, err)
	}

	selected := d.selectTests(group, descriptors)
	if len(selected) == 0 {
		return nil
	}

	names, err := d.requiredTargets(ctx, intro, group, selected, targets)
	if err != nil {
		return d.groupFailed(ctx, group, err)
	}

	if len(names) > 0 {
		_, err := d.runner.Run(ctx, ports.Command{
			Name:    mesonPath(ws.Settings),
			Args: append([]string{"compile", "-C", group.buildDir}, names...),
			Dir:  group.folder.Path,
		})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			d.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "build_dir", group.buildDir))
			d.notifier.Warn(fmt.Sprintf("Failed to build tests of %s, skipping debug", group.folder.Name))
			return nil
		}
	}

	for _, test := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}
		cfg, err := domain.NewLaunchConfig(test, group.buildDir)
		if err != nil {
			d.logger.Error(zerr.With(err, "test", test.Name))
			continue
		}
		cfg.ApplyOverrides(ws.Settings.DebugOptions)

		if err := d.launcher.Launch(ctx, cfg); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			d.logger.Error(zerr.With(err, "test", test.Name))
			d.notifier.Error("Could not start debugging " + test.Name)
		}
	}
	return nil
}

func (d *Driver) selectTests(group *leafGroup, descriptors []domain.TestDescriptor) []*domain.TestDescriptor {
	byName := make(map[string]*domain.TestDescriptor, len(descriptors))
	for i := range descriptors {
		byName[descriptors[i].Name] = &descriptors[i]
	}

	selected := make([]*domain.TestDescriptor, 0, len(group.leaves))
	for _, leaf := range group.leaves {
		test, ok := byName[leaf.ID]
		if !ok {
			d.logger.Error(zerr.With(zerr.With(domain.ErrTestNotFound, "test", leaf.ID), "build_dir", group.buildDir))
			continue
		}
		selected = append(selected, test)
	}
	return selected
}

// requiredTargets returns the resolved names of every target a selected test depends on.
func (d *Driver) requiredTargets(
	ctx context.Context,
	intro ports.Introspector,
	group *leafGroup,
	selected []*domain.TestDescriptor,
	targets []domain.Target,
) ([]string, error) {
	var needed []*domain.Target
	for i := range targets {
		for _, test := range selected {
			if test.DependsOn(targets[i].ID) {
				needed = append(needed, &targets[i])
				break
			}
		}
	}
	if len(needed) == 0 {
		return nil, nil
	}

	layout, err := tasks.ReadLayout(ctx, intro, group.buildDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(needed))
	for _, target := range needed {
		name, err := tasks.TargetName(layout, group.folder.Path, target)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (d *Driver) groupFailed(ctx context.Context, group *leafGroup, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	d.logger.Error(zerr.With(zerr.Wrap(err, "failed to prepare debug session"), "build_dir", group.buildDir))
	d.notifier.Error(fmt.Sprintf("Could not debug tests of %s", group.folder.Name))
	return nil
}

func mesonPath(settings domain.Settings) string {
	if settings.MesonPath == "" {
		return domain.DefaultMesonPath
	}
	return settings.MesonPath
}
