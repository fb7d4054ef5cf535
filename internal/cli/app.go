// Package cli implements the linelint commands on top of the linter.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/linelint/internal/config"
	"github.com/wizzomafizzo/linelint/internal/constants"
	"github.com/wizzomafizzo/linelint/internal/lineending"
	"github.com/wizzomafizzo/linelint/internal/linter"
	"github.com/wizzomafizzo/linelint/internal/logging"
	"github.com/wizzomafizzo/linelint/internal/report"
	"github.com/wizzomafizzo/linelint/internal/rules"
)

// Options are the command line settings shared by every command.
type Options struct {
	// LogWriter replaces the rotating log file.
	LogWriter io.Writer
	// ConfigPath is an explicit config file. Empty means discovery in the
	// target directory.
	ConfigPath string
	// LineEnding overrides the configured policy when set.
	LineEnding string
	Verbose    bool
	NoColor    bool
}

type App struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	opts   Options
}

func NewApp(fs afero.Fs, stdout, stderr io.Writer, opts Options) *App {
	return &App{fs: fs, stdout: stdout, stderr: stderr, opts: opts}
}

// Check reports every issue below dir. It returns an *ExitError with
// ExitIssuesFound when issues were printed and ExitError when files could
// not be processed.
func (a *App) Check(ctx context.Context, dir string) error {
	ctx, cfg, err := a.setup(ctx, dir)
	if err != nil {
		return err
	}

	printer := a.printer()
	issues, err := a.linter(cfg).CheckDir(ctx, dir)
	if err != nil {
		printer.Errors("checking", err)
		return &ExitError{Code: constants.ExitError}
	}

	printer.Issues(issues)
	if len(issues) > 0 {
		return &ExitError{Code: constants.ExitIssuesFound}
	}
	return nil
}

// Format rewrites every non-conforming file below dir.
func (a *App) Format(ctx context.Context, dir string) error {
	ctx, cfg, err := a.setup(ctx, dir)
	if err != nil {
		return err
	}

	printer := a.printer()
	summary, err := a.linter(cfg).FormatDirSummary(ctx, dir)
	if err != nil {
		printer.Errors("formatting", err)
		return &ExitError{Code: constants.ExitError}
	}

	logging.Get(ctx).Debug().
		Int("scanned", summary.Scanned).
		Int("changed", summary.Changed).
		Msg("format summary")
	printer.Formatted()
	return nil
}

// ValidateConfig loads the config that a run in dir would use and returns
// a short human-readable result.
func (a *App) ValidateConfig(dir string) (string, error) {
	path := a.configPath(dir)
	if path == "" {
		return "No config file found, using defaults", nil
	}
	if _, err := config.Load(a.fs, path); err != nil {
		return "", err //nolint:wrapcheck // Load errors name the file
	}
	return fmt.Sprintf("Configuration %s is valid", path), nil
}

// Init writes the default config file into dir.
func (a *App) Init(dir string) (string, error) {
	if existing := config.Discover(a.fs, dir); existing != "" {
		return "", fmt.Errorf("config file already exists: %s", existing)
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return "", err //nolint:wrapcheck // Already wrapped
	}

	path := filepath.Join(dir, constants.ConfigFilenames[0])
	if err := afero.WriteFile(a.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return fmt.Sprintf("Created %s", path), nil
}

// setup loads configuration, applies flag overrides and attaches the logger.
func (a *App) setup(ctx context.Context, dir string) (context.Context, *config.Config, error) {
	path := a.configPath(dir)
	cfg, err := config.Load(a.fs, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if a.opts.LineEnding != "" {
		policy, err := lineending.Parse(a.opts.LineEnding)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --line-ending: %w", err)
		}
		cfg.LineEnding = policy
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck // Validated by config.Load
	}
	logConfig := logging.Config{
		Writer: a.opts.LogWriter,
		Path:   cfg.Logging.Path,
		Root:   dir,
		Level:  level,
	}
	if a.opts.Verbose {
		logConfig.Level = logging.DebugLevel
		logConfig.Console = a.stderr
	}

	ctx, err = logging.New(ctx, a.fs, logConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("logger init failed: %w", err)
	}

	logging.Get(ctx).Debug().
		Str("config", path).
		Str("line_ending", cfg.LineEnding.String()).
		Strs("exclude", cfg.Exclude).
		Msg("configuration loaded")

	return ctx, cfg, nil
}

func (a *App) configPath(dir string) string {
	if a.opts.ConfigPath != "" {
		return a.opts.ConfigPath
	}
	return config.Discover(a.fs, dir)
}

func (a *App) linter(cfg *config.Config) *linter.Linter {
	return linter.New(a.fs, rules.Default(cfg.LineEnding), cfg.WalkerOptions())
}

func (a *App) printer() *report.Printer {
	return report.New(a.stdout, a.stderr, !a.opts.NoColor && !color.NoColor)
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return constants.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return constants.ExitError
}
