package tasks

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// Aggregator merges the tasks of every configured folder of a workspace.
type Aggregator struct {
	factory  ports.IntrospectorFactory
	locator  ports.BuildLocator
	logger   ports.Logger
	notifier ports.Notifier
}

// NewAggregator creates a new Aggregator.
func NewAggregator(
	factory ports.IntrospectorFactory,
	locator ports.BuildLocator,
	logger ports.Logger,
	notifier ports.Notifier,
) *Aggregator {
	return &Aggregator{
		factory:  factory,
		locator:  locator,
		logger:   logger,
		notifier: notifier,
	}
}

// Collect synthesizes the tasks of all folders in order.
// Folders without a build directory on disk are skipped. A folder whose
// synthesis fails contributes no tasks. Only cancellation aborts the pass.
func (a *Aggregator) Collect(ctx context.Context, ws *domain.Workspace) (*Registry, error) {
	synth := NewSynthesizer(a.factory(ws.Settings), ws.Settings)

	var all []domain.TaskDescriptor
	for _, folder := range ws.Folders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir, ok := a.locator.Locate(ws, folder)
		if !ok {
			continue
		}

		tasks, err := synth.Synthesize(ctx, dir)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			a.logger.Error(zerr.With(zerr.Wrap(err, "failed to synthesize tasks"), "folder", folder.Path))
			a.notifier.Error(fmt.Sprintf("Could not list tasks of %s", folder.Name))
			continue
		}
		all = append(all, tasks...)
	}

	return NewRegistry(all, a.logger), nil
}

// Registry is an immutable snapshot of aggregated tasks.
type Registry struct {
	tasks  []domain.TaskDescriptor
	logger ports.Logger
}

// NewRegistry creates a Registry over tasks.
func NewRegistry(tasks []domain.TaskDescriptor, logger ports.Logger) *Registry {
	return &Registry{tasks: tasks, logger: logger}
}

// All returns a copy of the registered tasks.
func (r *Registry) All() []domain.TaskDescriptor {
	return slices.Clone(r.tasks)
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}

type findOptions struct {
	folder   string
	filename string
}

// FindOption narrows a Find lookup.
type FindOption func(*findOptions)

// InFolder restricts the lookup to the folder with the given path.
func InFolder(path string) FindOption {
	return func(o *findOptions) { o.folder = path }
}

// WithFilename restricts the lookup to run tasks of the given output file.
func WithFilename(filename string) FindOption {
	return func(o *findOptions) { o.filename = filename }
}

// Find returns the first task with the given mode and target.
// More than one match is logged as a warning.
func (r *Registry) Find(mode domain.TaskMode, target string, opts ...FindOption) (*domain.TaskDescriptor, error) {
	var o findOptions
	for _, opt := range opts {
		opt(&o)
	}

	var matches []*domain.TaskDescriptor
	for i := range r.tasks {
		t := &r.tasks[i]
		if !t.Matches(mode, target) {
			continue
		}
		if o.folder != "" && t.Folder.Path != o.folder {
			continue
		}
		if o.filename != "" && t.Definition.Filename != o.filename {
			continue
		}
		matches = append(matches, t)
	}

	if len(matches) == 0 {
		return nil, zerr.With(zerr.With(domain.ErrTaskNotFound, "mode", string(mode)), "target", target)
	}
	if len(matches) > 1 && r.logger != nil {
		r.logger.Warn(fmt.Sprintf("%d tasks match %s, using %s", len(matches),
			matches[0].Definition.Key(), matches[0].Name))
	}
	return matches[0], nil
}
