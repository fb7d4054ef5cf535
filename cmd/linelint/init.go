package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createInitCommand creates the init command.
func createInitCommand(env commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default linelint.yml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := createAppFromCommand(cmd, env)
			if err != nil {
				return err
			}

			result, err := app.Init(targetDir(args))
			if err != nil {
				return fmt.Errorf("init failed: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
