package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonic/internal/adapters/collection"
	"go.trai.ch/mesonic/internal/app"
	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/mesonic/internal/core/ports/mocks"
	"go.trai.ch/mesonic/internal/engine/tasks"
	"go.trai.ch/mesonic/internal/engine/testrun"
	"go.trai.ch/mesonic/internal/engine/testtree"
	"go.uber.org/mock/gomock"
)

var (
	project  = domain.WorkspaceFolder{Name: "proj", Path: "/src"}
	buildDir = domain.BuildDirectory{Path: "/src/builddir", Folder: project}
)

type fixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	locator  *mocks.MockBuildLocator
	runner   *mocks.MockProcessRunner
	intro    *mocks.MockIntrospector
	launcher *mocks.MockDebugLauncher
	store    *mocks.MockResultStore
	watcher  *mocks.MockWatcher
	logger   *mocks.MockLogger
	notifier *mocks.MockNotifier
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	ws       *domain.Workspace
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		locator:  mocks.NewMockBuildLocator(ctrl),
		runner:   mocks.NewMockProcessRunner(ctrl),
		intro:    mocks.NewMockIntrospector(ctrl),
		launcher: mocks.NewMockDebugLauncher(ctrl),
		store:    mocks.NewMockResultStore(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		stdout:   new(bytes.Buffer),
		stderr:   new(bytes.Buffer),
		ws: &domain.Workspace{
			Root:     "/src",
			Folders:  []domain.WorkspaceFolder{project},
			Settings: domain.DefaultSettings(),
		},
	}

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().End().AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) { return ctx, span }).
		AnyTimes()

	f.loader.EXPECT().Load(".").DoAndReturn(func(string) (*domain.Workspace, error) { return f.ws, nil }).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	factory := func(domain.Settings) ports.Introspector { return f.intro }
	aggregator := tasks.NewAggregator(factory, f.locator, f.logger, f.notifier)
	reconciler := testtree.NewReconciler(factory, f.locator, collection.Factory(), f.logger, f.notifier)
	driver := testrun.NewDriver(f.runner, factory, tracer, f.launcher, f.logger, f.notifier)

	f.app = app.New(f.loader, f.locator, f.runner, aggregator, reconciler, driver,
		f.store, f.watcher, collection.Factory(), f.logger, f.notifier).
		WithOutput(f.stdout, f.stderr)
	return f
}

func (f *fixture) configured() {
	f.locator.EXPECT().Locate(gomock.Any(), project).Return(buildDir, true).AnyTimes()
}

func (f *fixture) introspection(targets []domain.Target, tests []domain.TestDescriptor) {
	f.intro.EXPECT().Targets(gomock.Any(), buildDir.Path).Return(targets, nil).AnyTimes()
	f.intro.EXPECT().Tests(gomock.Any(), buildDir.Path).Return(tests, nil).AnyTimes()
	f.intro.EXPECT().Benchmarks(gomock.Any(), buildDir.Path).Return(nil, nil).AnyTimes()
	f.intro.EXPECT().BuildOption(gomock.Any(), buildDir.Path, "layout").Return("mirror", true, nil).AnyTimes()
}

var appTarget = domain.Target{
	ID: "app@exe", Name: "app", Type: "executable",
	Filenames: []string{"/src/builddir/app"}, DefinedIn: "/src/meson.build",
}

func TestApp_Build(t *testing.T) {
	f := newFixture(t)
	f.configured()
	f.introspection([]domain.Target{appTarget}, nil)

	f.runner.EXPECT().Stream(gomock.Any(), ports.Command{
		Name: "meson",
		Args: []string{"compile", "-C", "/src/builddir", "app"},
		Dir:  "/src/builddir",
	}, f.stdout, f.stderr).Return(0, nil)

	require.NoError(t, f.app.Build(context.Background(), "app", ""))
}

func TestApp_Build_IgnoresTestTimeout(t *testing.T) {
	f := newFixture(t)
	f.ws.Settings.Timeout = time.Second
	f.configured()
	f.introspection(nil, nil)

	f.runner.EXPECT().Stream(gomock.Any(), ports.Command{
		Name: "meson",
		Args: []string{"compile", "-C", "/src/builddir"},
		Dir:  "/src/builddir",
	}, f.stdout, f.stderr).Return(0, nil)

	require.NoError(t, f.app.Build(context.Background(), "", ""))
}

func TestApp_FixedTasks_EveryFolder(t *testing.T) {
	lib := domain.WorkspaceFolder{Name: "lib", Path: "/lib"}
	libBuild := domain.BuildDirectory{Path: "/lib/builddir", Folder: lib}

	setup := func(t *testing.T) *fixture {
		t.Helper()
		f := newFixture(t)
		f.ws.Folders = append(f.ws.Folders, lib)
		f.configured()
		f.introspection(nil, nil)
		f.locator.EXPECT().Locate(gomock.Any(), lib).Return(libBuild, true).AnyTimes()
		f.intro.EXPECT().Targets(gomock.Any(), libBuild.Path).Return(nil, nil).AnyTimes()
		f.intro.EXPECT().Tests(gomock.Any(), libBuild.Path).Return(nil, nil).AnyTimes()
		f.intro.EXPECT().Benchmarks(gomock.Any(), libBuild.Path).Return(nil, nil).AnyTimes()
		f.intro.EXPECT().BuildOption(gomock.Any(), libBuild.Path, "layout").Return("mirror", true, nil).AnyTimes()
		return f
	}

	t.Run("Reconfigure", func(t *testing.T) {
		f := setup(t)
		gomock.InOrder(
			f.runner.EXPECT().Stream(gomock.Any(), ports.Command{
				Name: "meson",
				Args: []string{"setup", "--reconfigure", "/src/builddir"},
				Dir:  "/src",
			}, f.stdout, f.stderr).Return(0, nil),
			f.runner.EXPECT().Stream(gomock.Any(), ports.Command{
				Name: "meson",
				Args: []string{"setup", "--reconfigure", "/lib/builddir"},
				Dir:  "/lib",
			}, f.stdout, f.stderr).Return(0, nil),
		)

		require.NoError(t, f.app.Reconfigure(context.Background(), ""))
	})

	t.Run("CleanSelectedFolder", func(t *testing.T) {
		f := setup(t)
		f.runner.EXPECT().Stream(gomock.Any(), ports.Command{
			Name: "meson",
			Args: []string{"compile", "-C", "/lib/builddir", "--clean"},
			Dir:  "/lib/builddir",
		}, f.stdout, f.stderr).Return(0, nil)

		require.NoError(t, f.app.Clean(context.Background(), "lib"))
	})

	t.Run("StopsAtFirstFailure", func(t *testing.T) {
		f := setup(t)
		f.runner.EXPECT().Stream(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(1, domain.ErrProcessInvocationFailed)
		f.logger.EXPECT().Error(gomock.Any())
		f.notifier.EXPECT().Error("Task Build all targets failed")

		err := f.app.Build(context.Background(), "", "")
		require.ErrorIs(t, err, domain.ErrTaskExecutionFailed)
	})
}

func TestApp_RunTask_ProcessTask(t *testing.T) {
	f := newFixture(t)
	f.configured()
	f.introspection([]domain.Target{appTarget}, nil)

	f.runner.EXPECT().Stream(gomock.Any(), ports.Command{
		Name: "/src/builddir/app",
		Dir:  "/src",
	}, f.stdout, f.stderr).Return(0, nil)

	require.NoError(t, f.app.RunTask(context.Background(), app.TaskRequest{Mode: domain.ModeRun, Target: "app"}))
}

func TestApp_RunTask_NotFound(t *testing.T) {
	f := newFixture(t)
	f.configured()
	f.introspection(nil, nil)
	f.notifier.EXPECT().Error("No build task found for missing")

	err := f.app.Build(context.Background(), "missing", "")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTaskNotFound.Error())
}

func TestApp_RunTask_UnknownFolder(t *testing.T) {
	f := newFixture(t)
	f.configured()
	f.introspection(nil, nil)

	err := f.app.Clean(context.Background(), "elsewhere")
	assert.ErrorContains(t, err, domain.ErrUnknownFolder.Error())
}

func TestApp_ExecutionFailure(t *testing.T) {
	f := newFixture(t)
	f.ws.Settings.Reveal = domain.RevealSilent
	f.configured()
	f.introspection(nil, nil)

	f.runner.EXPECT().Stream(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ports.Command, stdout, _ io.Writer) (int, error) {
			_, _ = io.WriteString(stdout, "ninja: build stopped\n")
			return 1, domain.ErrProcessInvocationFailed
		})
	f.logger.EXPECT().Error(gomock.Any())
	f.notifier.EXPECT().Error("Task Clean failed")

	err := f.app.Clean(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrTaskExecutionFailed)
	assert.Empty(t, f.stdout.String())
	assert.Equal(t, "ninja: build stopped\n", f.stderr.String())
}

func TestApp_Configure(t *testing.T) {
	t.Run("SetupWhenMissing", func(t *testing.T) {
		f := newFixture(t)
		f.ws.Settings.ConfigureOptions = []string{"--buildtype=release"}
		f.locator.EXPECT().Locate(gomock.Any(), project).Return(domain.BuildDirectory{}, false)

		f.runner.EXPECT().Stream(gomock.Any(), ports.Command{
			Name: "meson",
			Args: []string{"setup", "--buildtype=release", "/src/builddir"},
			Dir:  "/src",
		}, gomock.Any(), gomock.Any()).Return(0, nil)

		require.NoError(t, f.app.Configure(context.Background(), ""))
	})

	t.Run("ReconfigureWhenPresent", func(t *testing.T) {
		f := newFixture(t)
		f.configured()
		f.introspection(nil, nil)

		f.runner.EXPECT().Stream(gomock.Any(), ports.Command{
			Name: "meson",
			Args: []string{"setup", "--reconfigure", "/src/builddir"},
			Dir:  "/src",
		}, gomock.Any(), gomock.Any()).Return(0, nil)

		require.NoError(t, f.app.Configure(context.Background(), ""))
	})
}

func TestApp_Tasks(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		f := newFixture(t)
		f.configured()
		f.introspection([]domain.Target{appTarget}, nil)

		require.NoError(t, f.app.Tasks(context.Background(), app.ListOptions{}))
		out := f.stdout.String()
		assert.Contains(t, out, "meson:build:app")
		assert.Contains(t, out, "Run app")
		assert.Contains(t, out, "meson:reconfigure")
	})

	t.Run("JSON", func(t *testing.T) {
		f := newFixture(t)
		f.configured()
		f.introspection(nil, nil)

		require.NoError(t, f.app.Tasks(context.Background(), app.ListOptions{JSON: true}))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(f.stdout.Bytes(), &got))
		require.Len(t, got, 5)
		assert.Equal(t, "/src", got[0]["folder"])
		assert.Equal(t, "Build all targets", got[0]["name"])
	})
}

func TestApp_Tests(t *testing.T) {
	f := newFixture(t)
	f.configured()
	f.introspection(nil, []domain.TestDescriptor{{Name: "unit"}, {Name: "integration"}})

	f.store.EXPECT().Get("/src/builddir", "unit").
		Return(&domain.TestResult{ID: "unit", Outcome: domain.OutcomePassed, Duration: 12 * time.Millisecond}, nil)
	f.store.EXPECT().Get("/src/builddir", "integration").Return(nil, nil)

	require.NoError(t, f.app.Tests(context.Background(), app.ListOptions{}))
	assert.Equal(t, "✓ unit (passed, 12ms)\n○ integration\n", f.stdout.String())
}

func TestApp_Test(t *testing.T) {
	t.Run("Passed", func(t *testing.T) {
		f := newFixture(t)
		f.configured()
		f.introspection(nil, []domain.TestDescriptor{{Name: "unit"}, {Name: "other"}})

		f.runner.EXPECT().Run(gomock.Any(), ports.Command{
			Name: "meson",
			Args: []string{"test", "-C", "/src/builddir", "--print-errorlog", "unit"},
			Dir:  "/src",
		}).Return(&ports.Result{}, nil)
		f.store.EXPECT().Put("/src/builddir", gomock.Any()).Return(nil)

		require.NoError(t, f.app.Test(context.Background(), []string{"unit"}, app.TestOptions{}))
		assert.Contains(t, f.stdout.String(), "1 passed, 0 failed, 0 errored")
	})

	t.Run("PassingOutputNeedsVerbose", func(t *testing.T) {
		for _, verbose := range []bool{false, true} {
			f := newFixture(t)
			f.configured()
			f.introspection(nil, []domain.TestDescriptor{{Name: "unit"}})

			f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&ports.Result{Stdout: []byte("ok unit\n")}, nil)
			f.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

			require.NoError(t, f.app.Test(context.Background(), nil, app.TestOptions{Verbose: verbose}))
			assert.Equal(t, verbose, strings.Contains(f.stdout.String(), "ok unit"), "verbose=%v", verbose)
			assert.NotContains(t, f.stderr.String(), "ok unit")
		}
	})

	t.Run("Failed", func(t *testing.T) {
		f := newFixture(t)
		f.configured()
		f.introspection(nil, []domain.TestDescriptor{{Name: "unit"}})

		f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(&ports.Result{ExitCode: 1, Stderr: []byte("boom")}, domain.ErrProcessInvocationFailed)
		f.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

		err := f.app.Test(context.Background(), nil, app.TestOptions{})
		require.ErrorIs(t, err, domain.ErrTestsFailed)
	})

	t.Run("UnknownSelection", func(t *testing.T) {
		f := newFixture(t)
		f.configured()
		f.introspection(nil, []domain.TestDescriptor{{Name: "unit"}})
		f.notifier.EXPECT().Error("Unknown test nope")

		err := f.app.Test(context.Background(), []string{"nope"}, app.TestOptions{})
		assert.ErrorContains(t, err, domain.ErrTestNotFound.Error())
	})
}

func TestApp_Debug(t *testing.T) {
	f := newFixture(t)
	f.configured()
	f.introspection([]domain.Target{appTarget}, []domain.TestDescriptor{
		{Name: "unit", Cmd: []string{"/src/builddir/app", "--selftest"}, Depends: []string{"app@exe"}},
	})

	f.runner.EXPECT().Run(gomock.Any(), ports.Command{
		Name: "meson",
		Args: []string{"compile", "-C", "/src/builddir", "app"},
		Dir:  "/src",
	}).Return(&ports.Result{}, nil)
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg domain.LaunchConfig) error {
			assert.Equal(t, "/src/builddir/app", cfg.Program)
			assert.Equal(t, []string{"--selftest"}, cfg.Args)
			return nil
		})

	require.NoError(t, f.app.Debug(context.Background(), []string{"unit"}))
}

func TestApp_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(nil, errors.New("bad yaml"))

	a := app.New(loader, nil, nil, nil, nil, nil, nil, nil, collection.Factory(), nil, nil)
	err := a.Tasks(context.Background(), app.ListOptions{})
	assert.ErrorContains(t, err, "failed to load configuration")
}
