package ports

import "go.trai.ch/mesonic/internal/core/domain"

// ResultStore persists the last result of each test per build directory.
//
//go:generate mockgen -source=result_store.go -destination=mocks/mock_result_store.go -package=mocks
type ResultStore interface {
	// Get retrieves the last result of a test.
	// Returns nil, nil if not found.
	Get(buildDir, testID string) (*domain.TestResult, error)

	// Put stores a result.
	Put(buildDir string, result domain.TestResult) error
}
