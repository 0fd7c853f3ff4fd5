package ports

import (
	"context"

	"go.trai.ch/mesonic/internal/core/domain"
)

// DebugLauncher starts a debug session for a launch configuration.
//
//go:generate mockgen -source=debug_launcher.go -destination=mocks/mock_debug_launcher.go -package=mocks
type DebugLauncher interface {
	Launch(ctx context.Context, cfg domain.LaunchConfig) error
}
