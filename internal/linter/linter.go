// Package linter runs a rule set over every candidate file below a root.
package linter

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/linelint/internal/logging"
	"github.com/wizzomafizzo/linelint/internal/rules"
	"github.com/wizzomafizzo/linelint/internal/walker"
)

// TraversalError reports a path that could not be walked, read or written.
type TraversalError = walker.TraversalError

// Errors collects every failure of a directory run.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (e Errors) Unwrap() []error {
	return e
}

// FormatSummary counts the files a format run looked at and rewrote.
type FormatSummary struct {
	Scanned int
	Changed int
}

// Linter applies a rule set to files selected by a walker.
type Linter struct {
	fs     afero.Fs
	rules  *rules.RuleSet
	walker *walker.Walker
}

// New creates a linter reading and writing through fs.
func New(fs afero.Fs, ruleSet *rules.RuleSet, opts walker.Options) *Linter {
	return &Linter{
		fs:     fs,
		rules:  ruleSet,
		walker: walker.New(fs, opts),
	}
}

// Check returns the issues of a single content.
func (l *Linter) Check(filename, content string) []rules.Issue {
	return l.rules.Check(filename, content)
}

// Format returns content rewritten to satisfy every rule.
func (l *Linter) Format(content string) string {
	return l.rules.Format(content)
}

// CheckDir checks every candidate below root. Issues are ordered by file in
// walk order. When any file could not be processed the issues are dropped
// and the collected Errors are returned instead.
func (l *Linter) CheckDir(ctx context.Context, root string) ([]rules.Issue, error) {
	log := logging.Get(ctx).With().Str("component", "linter").Logger()

	var issues []rules.Issue
	var errs Errors
	files := 0

	for candidate, err := range l.walker.Walk(ctx, root) {
		if err != nil {
			log.Debug().Err(err).Msg("walk error")
			errs = append(errs, err)
			continue
		}
		files++
		found := l.rules.Check(candidate.Path, string(candidate.Content))
		if len(found) > 0 {
			log.Debug().Str("path", candidate.Path).Int("issues", len(found)).Msg("issues found")
		}
		issues = append(issues, found...)
	}

	log.Info().Int("files", files).Int("issues", len(issues)).Int("errors", len(errs)).Msg("check finished")

	if len(errs) > 0 {
		return nil, errs
	}
	return issues, nil
}

// FormatDir rewrites every candidate below root that does not conform.
func (l *Linter) FormatDir(ctx context.Context, root string) error {
	_, err := l.FormatDirSummary(ctx, root)
	return err
}

// FormatDirSummary is FormatDir reporting how many files were scanned and
// rewritten. Files whose content is already formatted are not written.
func (l *Linter) FormatDirSummary(ctx context.Context, root string) (FormatSummary, error) {
	log := logging.Get(ctx).With().Str("component", "linter").Logger()

	var summary FormatSummary
	var errs Errors

	for candidate, err := range l.walker.Walk(ctx, root) {
		if err != nil {
			log.Debug().Err(err).Msg("walk error")
			errs = append(errs, err)
			continue
		}
		summary.Scanned++

		formatted := l.rules.Format(string(candidate.Content))
		if formatted == string(candidate.Content) {
			continue
		}
		if err := l.writeFile(candidate.Path, formatted); err != nil {
			errs = append(errs, err)
			continue
		}
		log.Debug().Str("path", candidate.Path).Msg("formatted")
		summary.Changed++
	}

	log.Info().Int("files", summary.Scanned).Int("changed", summary.Changed).Int("errors", len(errs)).Msg("format finished")

	if len(errs) > 0 {
		return summary, errs
	}
	return summary, nil
}

// writeFile replaces the content of an existing file, keeping its mode.
func (l *Linter) writeFile(path, content string) error {
	info, err := l.fs.Stat(path)
	if err != nil {
		return &TraversalError{Path: path, Err: err}
	}
	if err := afero.WriteFile(l.fs, path, []byte(content), info.Mode().Perm()); err != nil {
		return &TraversalError{Path: path, Err: fmt.Errorf("failed to write file: %w", err)}
	}
	return nil
}
