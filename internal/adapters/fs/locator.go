// Package fs provides file system adapters for locating build directories.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/mesonic/internal/core/domain"
	"go.trai.ch/mesonic/internal/core/ports"
)

var _ ports.BuildLocator = (*Locator)(nil)

// Locator implements ports.BuildLocator using os.Stat.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate resolves the configured build folder against the folder path.
// An absolute build folder is used as is.
func (l *Locator) Locate(ws *domain.Workspace, folder domain.WorkspaceFolder) (domain.BuildDirectory, bool) {
	dir := BuildPath(ws.Settings.BuildFolder, folder.Path)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return domain.BuildDirectory{}, false
	}
	return domain.BuildDirectory{Path: dir, Folder: folder}, true
}

// BuildPath returns the build directory path for a folder without checking it exists.
func BuildPath(buildFolder, folderPath string) string {
	if buildFolder == "" {
		buildFolder = domain.DefaultBuildFolder
	}
	if filepath.IsAbs(buildFolder) {
		return filepath.Clean(buildFolder)
	}
	return filepath.Join(folderPath, buildFolder)
}
