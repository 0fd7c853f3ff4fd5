package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonic/internal/adapters/fs"
	"go.trai.ch/mesonic/internal/core/domain"
)

func TestLocator_Locate(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "builddir"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, "afile"), nil, domain.FilePerm))

	folder := domain.WorkspaceFolder{Name: "proj", Path: root}
	locator := fs.NewLocator()

	t.Run("Existing", func(t *testing.T) {
		ws := &domain.Workspace{Settings: domain.Settings{BuildFolder: "builddir"}}
		dir, ok := locator.Locate(ws, folder)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(root, "builddir"), dir.Path)
		assert.Equal(t, folder, dir.Folder)
	})

	t.Run("Missing", func(t *testing.T) {
		ws := &domain.Workspace{Settings: domain.Settings{BuildFolder: "other"}}
		_, ok := locator.Locate(ws, folder)
		assert.False(t, ok)
	})

	t.Run("NotADirectory", func(t *testing.T) {
		ws := &domain.Workspace{Settings: domain.Settings{BuildFolder: "afile"}}
		_, ok := locator.Locate(ws, folder)
		assert.False(t, ok)
	})

	t.Run("Absolute", func(t *testing.T) {
		abs := t.TempDir()
		ws := &domain.Workspace{Settings: domain.Settings{BuildFolder: abs}}
		dir, ok := locator.Locate(ws, folder)
		require.True(t, ok)
		assert.Equal(t, abs, dir.Path)
	})
}

func TestBuildPath(t *testing.T) {
	assert.Equal(t, "/src/builddir", fs.BuildPath("", "/src"))
	assert.Equal(t, "/src/out/debug", fs.BuildPath("out/debug", "/src"))
	assert.Equal(t, "/abs/build", fs.BuildPath("/abs/build/", "/src"))
}
