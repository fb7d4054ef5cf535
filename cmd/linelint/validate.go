package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createValidateCommand creates the validate command.
func createValidateCommand(env commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [dir]",
		Short: "Validate the configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := createAppFromCommand(cmd, env)
			if err != nil {
				return err
			}

			result, err := app.ValidateConfig(targetDir(args))
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
