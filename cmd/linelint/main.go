package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/linelint/internal/cli"
	"github.com/wizzomafizzo/linelint/internal/constants"
)

func main() {
	if err := run(); err != nil {
		// Check and format print their own results and only carry the code
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(constants.ExitError)
	}
}

func run() error {
	if err := createNewRootCommand(commandEnv{fs: afero.NewOsFs()}).Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
