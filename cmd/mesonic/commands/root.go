// Package commands implements the CLI commands for mesonic.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mesonic/internal/app"
	"go.trai.ch/mesonic/internal/build"
)

// CLI represents the command line interface for mesonic.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	onJSONLogs func()
}

// Application represents the application logic interface.
type Application interface {
	Tasks(ctx context.Context, opts app.ListOptions) error
	RunTask(ctx context.Context, req app.TaskRequest) error
	Build(ctx context.Context, target, folder string) error
	Clean(ctx context.Context, folder string) error
	Configure(ctx context.Context, folder string) error
	Reconfigure(ctx context.Context, folder string) error
	Tests(ctx context.Context, opts app.ListOptions) error
	Test(ctx context.Context, selection []string, opts app.TestOptions) error
	Debug(ctx context.Context, selection []string) error
	Watch(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mesonic",
		Short:         "Drive meson projects from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json-logs", false, "Write diagnostic logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if enabled, _ := cmd.Flags().GetBool("json-logs"); enabled && c.onJSONLogs != nil {
			c.onJSONLogs()
		}
	}

	rootCmd.AddCommand(c.newTasksCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newConfigureCmd())
	rootCmd.AddCommand(c.newReconfigureCmd())
	rootCmd.AddCommand(c.newTestsCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newDebugCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// OnJSONLogs registers a hook that runs when --json-logs is set.
func (c *CLI) OnJSONLogs(fn func()) {
	c.onJSONLogs = fn
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
