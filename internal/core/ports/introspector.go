package ports

import (
	"context"

	"go.trai.ch/mesonic/internal/core/domain"
)

// Introspector reads structured project state from a configured build directory.
//
//go:generate mockgen -source=introspector.go -destination=mocks/mock_introspector.go -package=mocks
type Introspector interface {
	// Targets returns the buildable targets of the build directory.
	Targets(ctx context.Context, buildDir string) ([]domain.Target, error)
	// Tests returns the tests of the build directory.
	Tests(ctx context.Context, buildDir string) ([]domain.TestDescriptor, error)
	// Benchmarks returns the benchmarks of the build directory.
	Benchmarks(ctx context.Context, buildDir string) ([]domain.TestDescriptor, error)
	// BuildOption returns the value of a single build option.
	// The boolean is false when the option is not reported.
	BuildOption(ctx context.Context, buildDir, name string) (string, bool, error)
	// ProjectInfo returns the project metadata of the build directory.
	ProjectInfo(ctx context.Context, buildDir string) (*domain.ProjectInfo, error)
}

// IntrospectorFactory returns an Introspector that invokes the configured meson binary
// and bounds each call by the configured timeout.
type IntrospectorFactory func(settings domain.Settings) Introspector
