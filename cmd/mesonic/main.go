// Package main is the entry point for mesonic.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/joho/godotenv"
	"go.trai.ch/mesonic/cmd/mesonic/commands"
	"go.trai.ch/mesonic/internal/app"
	"go.trai.ch/mesonic/internal/core/domain"
	_ "go.trai.ch/mesonic/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	// A missing .env file is fine; overrides then come from the real environment.
	_ = godotenv.Load()

	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

type jsonToggler interface {
	SetJSON(enable bool)
}

type outputSetter interface {
	SetOutput(w io.Writer)
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// No logger yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	if cleanup != nil {
		defer cleanup()
	}

	components.App.WithOutput(stdout, stderr)
	if renderer, ok := components.Renderer.(outputSetter); ok {
		renderer.SetOutput(stderr)
	}
	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)
	if toggler, ok := components.Logger.(jsonToggler); ok {
		cli.OnJSONLogs(func() { toggler.SetJSON(true) })
	}

	if err := cli.Execute(ctx); err != nil {
		// Already reported by the task output or the test summary.
		if errors.Is(err, domain.ErrTaskExecutionFailed) || errors.Is(err, domain.ErrTestsFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
