package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mesonic/internal/app"
)

func (c *CLI) newTestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tests",
		Short: "List tests with their last known results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.Tests(cmd.Context(), app.ListOptions{JSON: asJSON})
		},
	}
	cmd.Flags().Bool("json", false, "Print the test tree as JSON")
	return cmd
}

func (c *CLI) newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [tests...]",
		Short: "Run tests",
		Long: "Run the named tests, or every test when none is given.\n" +
			"A name selects a test, a folder, or a test of one folder as <folder>/<test>.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return c.app.Test(cmd.Context(), args, app.TestOptions{Verbose: verbose})
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Print the output of passing tests")
	return cmd
}

func (c *CLI) newDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug <tests...>",
		Short: "Build the dependencies of tests and emit their debug launch configurations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Debug(cmd.Context(), args)
		},
	}
}

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Refresh tasks and tests whenever meson rewrites its introspection files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context())
		},
	}
}
