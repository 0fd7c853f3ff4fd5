package ports

import "time"

// Renderer presents the progress of spans to the user.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnTaskStart is called when a unit of work begins.
	// spanID: unique identifier for this execution
	// parentID: spanID of the parent (empty if root)
	// name: human-readable name
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskComplete is called when a unit of work finishes.
	// err is nil if successful.
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
