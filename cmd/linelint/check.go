package main

import (
	"github.com/spf13/cobra"
)

func runCheck(cmd *cobra.Command, env commandEnv, args []string) error {
	app, err := createAppFromCommand(cmd, env)
	if err != nil {
		return err
	}
	return app.Check(cmd.Context(), targetDir(args)) //nolint:wrapcheck // ExitError must reach main unchanged
}

// createCheckCommand creates the check command.
func createCheckCommand(env commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Report line ending and trailing whitespace issues",
		Long: `Report line ending and trailing whitespace issues in every text file
below dir (default: the current directory).

Exit status is 0 when no issues are found, 2 when issues are found and 1
when files could not be read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, env, args)
		},
	}
}
