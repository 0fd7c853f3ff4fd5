package ports

import "time"

// TestRun is the host's record of one test run.
//
//go:generate mockgen -source=test_run.go -destination=mocks/mock_test_run.go -package=mocks
type TestRun interface {
	// Started marks the item as running.
	Started(item *TestItem)
	// Passed marks the item as passed.
	Passed(item *TestItem, duration time.Duration)
	// Failed marks the item as failed with a message.
	Failed(item *TestItem, message string, duration time.Duration)
	// Errored marks the item as not runnable, e.g. because rebuilding failed.
	Errored(item *TestItem, message string, duration time.Duration)
	// AppendOutput attaches captured output to the run.
	AppendOutput(item *TestItem, output string)
	// End closes the run.
	End()
}
