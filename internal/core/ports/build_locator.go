package ports

import "go.trai.ch/mesonic/internal/core/domain"

// BuildLocator resolves the build directory of a workspace folder.
//
//go:generate mockgen -source=build_locator.go -destination=mocks/mock_build_locator.go -package=mocks
type BuildLocator interface {
	// Locate returns the build directory of folder.
	// The boolean is false when the directory does not exist on disk.
	Locate(ws *domain.Workspace, folder domain.WorkspaceFolder) (domain.BuildDirectory, bool)
}
