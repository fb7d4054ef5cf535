package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wizzomafizzo/linelint/internal/lineending"
)

// trailingEndings matches a run of one or more line endings at the very
// end of the content, keyed by ending.
var trailingEndings = map[string]*regexp.Regexp{
	lineending.Unix:    regexp.MustCompile(`(` + regexp.QuoteMeta(lineending.Unix) + `)+$`),
	lineending.Windows: regexp.MustCompile(`(` + regexp.QuoteMeta(lineending.Windows) + `)+$`),
}

// LineEndRule requires content to end with exactly one line ending.
type LineEndRule struct{}

// Name returns the rule name used in issues.
func (r *LineEndRule) Name() string {
	return LineEndRuleName
}

// Check reports a missing final line ending, or else a run of blank lines
// at the end of the file. Never both.
func (r *LineEndRule) Check(policy lineending.Policy, filename, content string) []Issue {
	if content == "" {
		return nil
	}

	ending := policy.Resolve(content)

	var description string
	switch {
	case !strings.HasSuffix(content, ending):
		description = "File does not end with the expected line ending"
	case strings.HasSuffix(content, ending+ending):
		description = "File has multiple trailing line endings"
	default:
		return nil
	}

	return []Issue{{
		Rule:        LineEndRuleName,
		Filename:    filename,
		Description: description,
		Line:        lineCount(content),
	}}
}

// Format collapses trailing line endings into one and adds one if missing.
func (r *LineEndRule) Format(policy lineending.Policy, content string) string {
	if content == "" {
		return content
	}

	ending := policy.Resolve(content)
	formatted := collapseTrailing(content, ending)
	if !strings.HasSuffix(formatted, ending) {
		formatted += ending
	}
	return formatted
}

// collapseTrailing replaces the trailing run of ending with a single one.
// ending must be one of the lineending constants.
func collapseTrailing(content, ending string) string {
	re, ok := trailingEndings[ending]
	if !ok {
		panic(fmt.Sprintf("rules: no trailing pattern for line ending %q", ending))
	}
	return re.ReplaceAllLiteralString(content, ending)
}
