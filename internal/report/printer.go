// Package report prints lint results for humans.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/linelint/internal/rules"
)

const (
	noIssuesMessage  = "No issues found."
	formattedMessage = "Files formatted successfully."
)

// Printer writes issues to out and errors to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	rule   *color.Color
	file   *color.Color
	ok     *color.Color
	fail   *color.Color
}

// New creates a printer. Colors are used only when colors is true.
func New(out, errOut io.Writer, colors bool) *Printer {
	p := &Printer{
		out:    out,
		errOut: errOut,
		rule:   color.New(color.FgYellow, color.Bold),
		file:   color.New(color.FgCyan),
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.rule, p.file, p.ok, p.fail} {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Issues prints one line per issue, or a success line when there are none.
func (p *Printer) Issues(issues []rules.Issue) {
	if len(issues) == 0 {
		_, _ = fmt.Fprintln(p.out, p.ok.Sprint(noIssuesMessage))
		return
	}
	for _, issue := range issues {
		_, _ = fmt.Fprintf(p.out, "%s: %s in file %s at line %d\n",
			p.rule.Sprint(issue.Rule), issue.Description, p.file.Sprint(issue.Filename), issue.Line)
	}
}

// Formatted prints the format success line.
func (p *Printer) Formatted() {
	_, _ = fmt.Fprintln(p.out, p.ok.Sprint(formattedMessage))
}

// Errors prints each error joined into err on its own line, prefixed with
// the failed action, e.g. "Error checking files: ...".
func (p *Printer) Errors(action string, err error) {
	for _, e := range flatten(err) {
		_, _ = fmt.Fprintf(p.errOut, "%s %v\n", p.fail.Sprintf("Error %s files:", action), e)
	}
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
