package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonic/internal/adapters/config"
	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newLoader(t *testing.T, env map[string]string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	loader := config.NewLoader(mockLogger)
	loader.Getenv = func(key string) string { return env[key] }
	return loader
}

func TestLoad_Implicit(t *testing.T) {
	dir := t.TempDir()

	ws, err := newLoader(t, nil).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, ws.Root)
	assert.Equal(t, []domain.WorkspaceFolder{{Name: filepath.Base(dir), Path: dir}}, ws.Folders)
	assert.Equal(t, domain.DefaultSettings(), ws.Settings)
}

func TestLoad_Standalone(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, domain.ConfigFileName), `
version: "1"
settings:
  mesonPath: /opt/meson/bin/meson
  buildFolder: build-debug
  configureOptions: ["-Dbuildtype=debug", "--werror"]
  debugOptions:
    MIMode: gdb
    stopAtEntry: true
  timeout: 90s
  reveal: silent
`)
	sub := filepath.Join(dir, "src", "lib")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	ws, err := newLoader(t, nil).Load(sub)
	require.NoError(t, err)

	assert.Equal(t, dir, ws.Root)
	require.Len(t, ws.Folders, 1)
	assert.Equal(t, dir, ws.Folders[0].Path)

	assert.Equal(t, domain.Settings{
		MesonPath:        "/opt/meson/bin/meson",
		BuildFolder:      "build-debug",
		ConfigureOptions: []string{"-Dbuildtype=debug", "--werror"},
		DebugOptions:     map[string]any{"MIMode": "gdb", "stopAtEntry": true},
		Timeout:          90 * time.Second,
		Reveal:           domain.RevealSilent,
	}, ws.Settings)
}

func TestLoad_Workspace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, domain.WorkFileName), `
version: "1"
folders:
  - "projects/*"
  - "projects/alpha"
settings:
  buildFolder: out
`)
	writeFile(t, filepath.Join(dir, "projects", "alpha", "meson.build"), "project('alpha', 'c')\n")
	writeFile(t, filepath.Join(dir, "projects", "beta", "meson.build"), "project('beta', 'c')\n")
	writeFile(t, filepath.Join(dir, "projects", "docs", "README"), "no meson here\n")
	writeFile(t, filepath.Join(dir, "projects", "notes.txt"), "a file\n")

	ws, err := newLoader(t, nil).Load(filepath.Join(dir, "projects", "beta"))
	require.NoError(t, err)

	assert.Equal(t, dir, ws.Root)
	assert.Equal(t, []domain.WorkspaceFolder{
		{Name: "alpha", Path: filepath.Join(dir, "projects", "alpha")},
		{Name: "beta", Path: filepath.Join(dir, "projects", "beta")},
	}, ws.Folders)
	assert.Equal(t, "out", ws.Settings.BuildFolder)
	assert.Equal(t, domain.DefaultMesonPath, ws.Settings.MesonPath)
}

func TestLoad_WorkspaceWarnsOnSkippedFolder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, domain.WorkFileName), "folders: [\"a\", \"b\"]\n")
	writeFile(t, filepath.Join(dir, "a", "meson.build"), "project('a')\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b"), 0o750))

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("meson.build missing in folder b, skipping")

	ws, err := config.NewLoader(mockLogger).Load(dir)
	require.NoError(t, err)
	require.Len(t, ws.Folders, 1)
	assert.Equal(t, "a", ws.Folders[0].Name)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, domain.ConfigFileName), "settings:\n  mesonPath: meson-from-file\n")

	ws, err := newLoader(t, map[string]string{
		config.EnvMesonPath:   "/env/meson",
		config.EnvBuildFolder: "env-build",
	}).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/env/meson", ws.Settings.MesonPath)
	assert.Equal(t, "env-build", ws.Settings.BuildFolder)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, dir string)
		errContains string
	}{
		{
			name: "malformed yaml",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				writeFile(t, filepath.Join(dir, domain.ConfigFileName), "settings: [unclosed\n")
			},
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name: "invalid timeout",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				writeFile(t, filepath.Join(dir, domain.ConfigFileName), "settings:\n  timeout: soon\n")
			},
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name: "negative timeout",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				writeFile(t, filepath.Join(dir, domain.ConfigFileName), "settings:\n  timeout: -1s\n")
			},
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name: "invalid reveal",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				writeFile(t, filepath.Join(dir, domain.ConfigFileName), "settings:\n  reveal: sometimes\n")
			},
			errContains: domain.ErrInvalidReveal.Error(),
		},
		{
			name: "workspace without folders",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				writeFile(t, filepath.Join(dir, domain.WorkFileName), "folders: [\"missing/*\"]\n")
			},
			errContains: domain.ErrNoFolders.Error(),
		},
		{
			name: "bad glob",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				writeFile(t, filepath.Join(dir, domain.WorkFileName), "folders: [\"[\"]\n")
			},
			errContains: "glob pattern failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			_, err := newLoader(t, nil).Load(dir)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.errContains)
		})
	}
}
