package tasks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
	"go.trai.ch/mesonic/internal/core/ports/mocks"
	"go.trai.ch/mesonic/internal/engine/tasks"
	"go.uber.org/mock/gomock"
)

type aggregatorMocks struct {
	intro    *mocks.MockIntrospector
	locator  *mocks.MockBuildLocator
	logger   *mocks.MockLogger
	notifier *mocks.MockNotifier
	mesonBin string
}

func newAggregator(t *testing.T) (*tasks.Aggregator, *aggregatorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &aggregatorMocks{
		intro:    mocks.NewMockIntrospector(ctrl),
		locator:  mocks.NewMockBuildLocator(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}
	factory := func(mesonPath string) ports.Introspector {
		m.mesonBin = mesonPath
		return m.intro
	}
	return tasks.NewAggregator(factory, m.locator, m.logger, m.notifier), m
}

func TestAggregator_Collect(t *testing.T) {
	agg, m := newAggregator(t)

	a := domain.WorkspaceFolder{Name: "a", Path: "/ws/a"}
	b := domain.WorkspaceFolder{Name: "b", Path: "/ws/b"}
	unconfigured := domain.WorkspaceFolder{Name: "c", Path: "/ws/c"}
	ws := &domain.Workspace{
		Folders:  []domain.WorkspaceFolder{a, unconfigured, b},
		Settings: domain.Settings{MesonPath: "/opt/meson", BuildFolder: "builddir"},
	}

	m.locator.EXPECT().Locate(ws, a).Return(domain.BuildDirectory{Path: "/ws/a/builddir", Folder: a}, true)
	m.locator.EXPECT().Locate(ws, unconfigured).Return(domain.BuildDirectory{}, false)
	m.locator.EXPECT().Locate(ws, b).Return(domain.BuildDirectory{Path: "/ws/b/builddir", Folder: b}, true)

	expectIntrospection(m.intro, "/ws/a/builddir", introspection{tests: []domain.TestDescriptor{{Name: "unit"}}})
	expectIntrospection(m.intro, "/ws/b/builddir", introspection{})

	reg, err := agg.Collect(context.Background(), ws)
	require.NoError(t, err)

	assert.Equal(t, "/opt/meson", m.mesonBin)
	assert.Equal(t, 5+1+5, reg.Len())

	all := reg.All()
	assert.Equal(t, a, all[0].Folder)
	assert.Equal(t, b, all[len(all)-1].Folder)
}

func TestAggregator_FolderIsolation(t *testing.T) {
	agg, m := newAggregator(t)

	broken := domain.WorkspaceFolder{Name: "broken", Path: "/ws/broken"}
	ok := domain.WorkspaceFolder{Name: "ok", Path: "/ws/ok"}
	ws := &domain.Workspace{Folders: []domain.WorkspaceFolder{broken, ok}, Settings: domain.DefaultSettings()}

	m.locator.EXPECT().Locate(ws, broken).Return(domain.BuildDirectory{Path: "/ws/broken/builddir", Folder: broken}, true)
	m.locator.EXPECT().Locate(ws, ok).Return(domain.BuildDirectory{Path: "/ws/ok/builddir", Folder: ok}, true)

	m.intro.EXPECT().Targets(gomock.Any(), "/ws/broken/builddir").Return(nil, errors.New("malformed"))
	m.intro.EXPECT().Tests(gomock.Any(), "/ws/broken/builddir").Return(nil, nil).AnyTimes()
	m.intro.EXPECT().Benchmarks(gomock.Any(), "/ws/broken/builddir").Return(nil, nil).AnyTimes()
	m.intro.EXPECT().BuildOption(gomock.Any(), "/ws/broken/builddir", "layout").Return("", false, nil).AnyTimes()
	expectIntrospection(m.intro, "/ws/ok/builddir", introspection{})

	m.logger.EXPECT().Error(gomock.Any())
	m.notifier.EXPECT().Error("Could not list tasks of broken")

	reg, err := agg.Collect(context.Background(), ws)
	require.NoError(t, err)
	assert.Equal(t, 5, reg.Len())
	for _, task := range reg.All() {
		assert.Equal(t, ok, task.Folder)
	}
}

func TestAggregator_Cancelled(t *testing.T) {
	agg, _ := newAggregator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ws := &domain.Workspace{Folders: []domain.WorkspaceFolder{{Name: "a", Path: "/ws/a"}}}
	_, err := agg.Collect(ctx, ws)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegistry_Find(t *testing.T) {
	a := domain.WorkspaceFolder{Name: "a", Path: "/ws/a"}
	b := domain.WorkspaceFolder{Name: "b", Path: "/ws/b"}
	list := []domain.TaskDescriptor{
		{Definition: domain.TaskDefinition{Type: "meson", Mode: domain.ModeBuild}, Name: "Build all targets", Folder: a},
		{Definition: domain.TaskDefinition{Type: "meson", Mode: domain.ModeBuild, Target: "app"}, Name: "Build app", Folder: a},
		{Definition: domain.TaskDefinition{Type: "meson", Mode: domain.ModeRun, Target: "app", Filename: "/x/app1"}, Name: "Run app: /x/app1", Folder: a},
		{Definition: domain.TaskDefinition{Type: "meson", Mode: domain.ModeRun, Target: "app", Filename: "/x/app2"}, Name: "Run app: /x/app2", Folder: a},
		{Definition: domain.TaskDefinition{Type: "meson", Mode: domain.ModeBuild}, Name: "Build all targets", Folder: b},
	}

	t.Run("Unique", func(t *testing.T) {
		reg := tasks.NewRegistry(list, nil)
		got, err := reg.Find(domain.ModeBuild, "app")
		require.NoError(t, err)
		assert.Equal(t, "Build app", got.Name)
	})

	t.Run("DuplicateWarnsAndReturnsFirst", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockLogger := mocks.NewMockLogger(ctrl)
		mockLogger.EXPECT().Warn(gomock.Any())

		got, err := tasks.NewRegistry(list, mockLogger).Find(domain.ModeBuild, "")
		require.NoError(t, err)
		assert.Equal(t, a, got.Folder)
	})

	t.Run("FolderFilter", func(t *testing.T) {
		got, err := tasks.NewRegistry(list, nil).Find(domain.ModeBuild, "", tasks.InFolder("/ws/b"))
		require.NoError(t, err)
		assert.Equal(t, b, got.Folder)
	})

	t.Run("FilenameFilter", func(t *testing.T) {
		got, err := tasks.NewRegistry(list, nil).Find(domain.ModeRun, "app", tasks.WithFilename("/x/app2"))
		require.NoError(t, err)
		assert.Equal(t, "Run app: /x/app2", got.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := tasks.NewRegistry(list, nil).Find(domain.ModeTest, "missing")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrTaskNotFound.Error())
	})
}
