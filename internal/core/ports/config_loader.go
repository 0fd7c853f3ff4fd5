package ports

import "go.trai.ch/mesonic/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the workspace that contains cwd and returns its folders and settings.
	Load(cwd string) (*domain.Workspace, error)
}
