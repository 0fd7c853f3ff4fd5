// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
	"time"
)

// Command describes a single external process invocation.
type Command struct {
	// Name is the executable to run.
	Name string
	// Args are the arguments passed to the executable.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env overlays the inherited process environment.
	Env map[string]string
	// Timeout bounds the invocation. Zero means no bound.
	Timeout time.Duration
}

// Result is the captured outcome of a buffered invocation.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// ProcessRunner invokes external commands. It never interprets their output.
//
//go:generate mockgen -source=process_runner.go -destination=mocks/mock_process_runner.go -package=mocks
type ProcessRunner interface {
	// Run executes the command and waits for it to exit, capturing its output.
	//
	// On a non-zero exit the returned Result is populated and the error wraps
	// domain.ErrProcessInvocationFailed. If the process could not be started the
	// Result carries exit code -1.
	Run(ctx context.Context, cmd Command) (*Result, error)

	// Stream executes the command, copying its output live to the given writers.
	// It returns the exit code of the process.
	Stream(ctx context.Context, cmd Command, stdout, stderr io.Writer) (int, error)
}
