package main

import (
	"github.com/spf13/cobra"
)

// createFormatCommand creates the format command.
func createFormatCommand(env commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "format [dir]",
		Short: "Rewrite files to fix line endings and trailing whitespace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := createAppFromCommand(cmd, env)
			if err != nil {
				return err
			}
			return app.Format(cmd.Context(), targetDir(args)) //nolint:wrapcheck // ExitError must reach main unchanged
		},
	}
}
