package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/linelint/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// commandEnv holds what commands share beyond flags.
type commandEnv struct {
	fs afero.Fs
	// logWriter replaces the log file when set
	logWriter io.Writer
}

// createNewRootCommand creates the root command. Run without a subcommand
// it checks the current directory.
func createNewRootCommand(env commandEnv) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linelint",
		Short:         "Check and fix line endings and trailing whitespace",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No subcommand provided, defaulting to 'check'...")
			return runCheck(cmd, env, nil)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to config file (default: discovered in the target directory)")
	flags.String("line-ending", "", "Line ending policy: auto, unix or windows (overrides config)")
	flags.BoolP("verbose", "v", false, "Log debug output to stderr")
	flags.Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		createCheckCommand(env),
		createFormatCommand(env),
		createValidateCommand(env),
		createInitCommand(env),
	)

	return rootCmd
}

// createAppFromCommand reads the persistent flags and creates a CLI app
func createAppFromCommand(cmd *cobra.Command, env commandEnv) (*cli.App, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	lineEnding, err := flags.GetString("line-ending")
	if err != nil {
		return nil, fmt.Errorf("failed to get line-ending flag: %w", err)
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-color flag: %w", err)
	}

	return cli.NewApp(env.fs, cmd.OutOrStdout(), cmd.ErrOrStderr(), cli.Options{
		LogWriter:  env.logWriter,
		ConfigPath: configPath,
		LineEnding: lineEnding,
		Verbose:    verbose,
		NoColor:    noColor,
	}), nil
}

// targetDir returns the directory argument, defaulting to the working directory.
func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
