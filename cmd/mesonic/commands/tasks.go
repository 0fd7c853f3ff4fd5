package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mesonic/internal/app"
	"go.trai.ch/mesonic/internal/core/domain"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks of all configured folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.Tasks(cmd.Context(), app.ListOptions{JSON: asJSON})
		},
	}
	cmd.Flags().Bool("json", false, "Print tasks as JSON")
	return cmd
}

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <mode> [target]",
		Short: "Run a task by mode and target",
		Long: "Run a synthesized task. Mode is one of build, run, test, benchmark, clean or reconfigure.\n" +
			"Omit the target to run the project-wide task of that mode.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseTaskMode(args[0])
			if err != nil {
				return err
			}

			req := app.TaskRequest{Mode: mode}
			if len(args) == 2 {
				req.Target = args[1]
			}
			req.Filename, _ = cmd.Flags().GetString("file")
			req.Folder, _ = cmd.Flags().GetString("folder")

			return c.app.RunTask(cmd.Context(), req)
		},
	}
	cmd.Flags().String("file", "", "Output file of an executable with several outputs")
	addFolderFlag(cmd)
	return cmd
}

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [target]",
		Short: "Build the project or a single target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target string
			if len(args) == 1 {
				target = args[0]
			}
			folder, _ := cmd.Flags().GetString("folder")
			return c.app.Build(cmd.Context(), target, folder)
		},
	}
	addFolderFlag(cmd)
	return cmd
}

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			folder, _ := cmd.Flags().GetString("folder")
			return c.app.Clean(cmd.Context(), folder)
		},
	}
	addFolderFlag(cmd)
	return cmd
}

func (c *CLI) newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Set up missing build directories and reconfigure existing ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			folder, _ := cmd.Flags().GetString("folder")
			return c.app.Configure(cmd.Context(), folder)
		},
	}
	addFolderFlag(cmd)
	return cmd
}

func (c *CLI) newReconfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconfigure",
		Short: "Re-run meson setup on existing build directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			folder, _ := cmd.Flags().GetString("folder")
			return c.app.Reconfigure(cmd.Context(), folder)
		},
	}
	addFolderFlag(cmd)
	return cmd
}

func addFolderFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("folder", "f", "", "Restrict to the workspace folder with this name or path")
}
