package domain

import "time"

// TestOutcome is the result classification of a single test execution.
type TestOutcome string

const (
	// OutcomePassed indicates the test succeeded.
	OutcomePassed TestOutcome = "passed"
	// OutcomeFailed indicates the test ran and failed.
	OutcomeFailed TestOutcome = "failed"
	// OutcomeErrored indicates the test could not run, e.g. because rebuilding failed.
	OutcomeErrored TestOutcome = "errored"
	// OutcomeSkipped indicates the test was not executed.
	OutcomeSkipped TestOutcome = "skipped"
)

// TestResult records the outcome of one test execution.
type TestResult struct {
	ID        string        `json:"id,omitzero"`
	Outcome   TestOutcome   `json:"outcome,omitzero"`
	Duration  time.Duration `json:"duration,omitzero"`
	Message   string        `json:"message,omitzero"`
	Output    string        `json:"output,omitzero"`
	Timestamp time.Time     `json:"timestamp,omitzero"`
}
