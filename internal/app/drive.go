package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/mesonic/internal/adapters/fs" //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/mesonic/internal/engine/tasks"
	"go.trai.ch/zerr"
)

// TaskRequest selects a single registered task.
type TaskRequest struct {
	Mode     domain.TaskMode
	Target   string
	Filename string
	Folder   string
}

// RunTask looks a task up by its identity and streams it.
func (a *App) RunTask(ctx context.Context, req TaskRequest) error {
	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}

	reg, err := a.collect(ctx, ws)
	if err != nil {
		return err
	}

	// Every folder carries its own project-wide task of each mode.
	if req.Target == "" && req.Folder == "" && len(ws.Folders) > 1 {
		return a.runEveryFolder(ctx, ws, reg, req)
	}

	opts := []tasks.FindOption{tasks.WithFilename(req.Filename)}
	if req.Folder != "" {
		folders, err := selectFolders(ws, req.Folder)
		if err != nil {
			return err
		}
		opts = append(opts, tasks.InFolder(folders[0].Path))
	}

	task, err := reg.Find(req.Mode, req.Target, opts...)
	if err != nil {
		a.notifier.Error(fmt.Sprintf("No %s task found for %s", req.Mode, describeTarget(req.Target)))
		return err
	}

	return a.execute(ctx, ws, task)
}

// runEveryFolder runs the project-wide task of req.Mode in each configured folder,
// stopping at the first failure. Folders without a build directory have no tasks.
func (a *App) runEveryFolder(ctx context.Context, ws *domain.Workspace, reg *tasks.Registry, req TaskRequest) error {
	var notFound error
	ran := 0
	for _, f := range ws.Folders {
		if err := ctx.Err(); err != nil {
			return err
		}

		task, err := reg.Find(req.Mode, "", tasks.WithFilename(req.Filename), tasks.InFolder(f.Path))
		if err != nil {
			notFound = err
			continue
		}
		if err := a.execute(ctx, ws, task); err != nil {
			return err
		}
		ran++
	}

	if ran == 0 {
		a.notifier.Error(fmt.Sprintf("No %s task found for %s", req.Mode, describeTarget("")))
		return notFound
	}
	return nil
}

// Build compiles target, or every configured project when target is empty.
func (a *App) Build(ctx context.Context, target, folder string) error {
	return a.RunTask(ctx, TaskRequest{Mode: domain.ModeBuild, Target: target, Folder: folder})
}

// Clean removes the build outputs of every selected folder.
func (a *App) Clean(ctx context.Context, folder string) error {
	return a.RunTask(ctx, TaskRequest{Mode: domain.ModeClean, Folder: folder})
}

// Reconfigure re-runs meson setup on existing build directories.
func (a *App) Reconfigure(ctx context.Context, folder string) error {
	return a.RunTask(ctx, TaskRequest{Mode: domain.ModeReconfigure, Folder: folder})
}

// Configure sets up the build directory of every selected folder.
// An existing build directory is reconfigured instead.
func (a *App) Configure(ctx context.Context, folder string) error {
	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}

	folders, err := selectFolders(ws, folder)
	if err != nil {
		return err
	}

	var reg *tasks.Registry
	for _, f := range folders {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, ok := a.locator.Locate(ws, f); !ok {
			if err := a.setup(ctx, ws, f); err != nil {
				return err
			}
			continue
		}

		if reg == nil {
			if reg, err = a.collect(ctx, ws); err != nil {
				return err
			}
		}
		task, err := reg.Find(domain.ModeReconfigure, "", tasks.InFolder(f.Path))
		if err != nil {
			a.notifier.Error("No reconfigure task found for " + f.Name)
			return err
		}
		if err := a.execute(ctx, ws, task); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) setup(ctx context.Context, ws *domain.Workspace, folder domain.WorkspaceFolder) error {
	buildDir := fs.BuildPath(ws.Settings.BuildFolder, folder.Path)
	args := append([]string{"setup"}, ws.Settings.ConfigureOptions...)

	task := &domain.TaskDescriptor{
		Definition: domain.TaskDefinition{Type: domain.TaskType, Mode: domain.ModeReconfigure},
		Name:       "Configure " + folder.Name,
		Folder:     folder,
		Command:    ws.Settings.MesonPath,
		Args:       append(args, buildDir),
		Dir:        folder.Path,
	}
	return a.execute(ctx, ws, task)
}

// execute streams task according to the configured reveal mode.
func (a *App) execute(ctx context.Context, ws *domain.Workspace, task *domain.TaskDescriptor) error {
	stdout, stderr := a.stdout, a.stderr
	var captured bytes.Buffer
	switch ws.Settings.Reveal {
	case domain.RevealSilent:
		stdout, stderr = &captured, &captured
	case domain.RevealNever:
		stdout, stderr = io.Discard, io.Discard
	}

	a.logger.Info(fmt.Sprintf("%s: %s", task.Name, strings.Join(task.CommandLine(), " ")))

	// Builds and run tasks are not bounded by the test timeout.
	_, err := a.runner.Stream(ctx, ports.Command{
		Name: task.Command,
		Args: task.Args,
		Dir:  task.Dir,
		Env:  task.Env,
	}, stdout, stderr)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if captured.Len() > 0 {
		_, _ = a.stderr.Write(captured.Bytes())
	}

	failure := zerr.With(zerr.Wrap(err, "task "+task.Name+" failed"), "task", task.Definition.Key())
	a.logger.Error(failure)
	a.notifier.Error(fmt.Sprintf("Task %s failed", task.Name))
	return errors.Join(domain.ErrTaskExecutionFailed, failure)
}

func describeTarget(target string) string {
	if target == "" {
		return "the project"
	}
	return target
}
