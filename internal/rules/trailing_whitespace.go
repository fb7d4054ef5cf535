package rules

import (
	"strings"

	"github.com/wizzomafizzo/linelint/internal/lineending"
)

// TrailingWhitespaceRule forbids whitespace at the end of any line.
type TrailingWhitespaceRule struct{}

// Name returns the rule name used in issues.
func (r *TrailingWhitespaceRule) Name() string {
	return TrailingWhitespaceRuleName
}

// Check reports every line that ends in whitespace, including an
// unterminated last line.
func (r *TrailingWhitespaceRule) Check(_ lineending.Policy, filename, content string) []Issue {
	var issues []Issue
	for i, line := range splitLines(content) {
		if line != "" && trimTrailingSpace(line) != line {
			issues = append(issues, Issue{
				Rule:        TrailingWhitespaceRuleName,
				Filename:    filename,
				Description: "Line contains trailing whitespace",
				Line:        i + 1,
			})
		}
	}
	return issues
}

// Format trims every line and rejoins them with the resolved ending. The
// result always ends with that ending, so this also normalizes mixed
// terminators.
func (r *TrailingWhitespaceRule) Format(policy lineending.Policy, content string) string {
	if content == "" {
		return content
	}

	ending := policy.Resolve(content)
	lines := splitLines(content)
	for i, line := range lines {
		lines[i] = trimTrailingSpace(line)
	}

	formatted := strings.Join(lines, ending)
	if !strings.HasSuffix(formatted, ending) {
		formatted += ending
	}
	return formatted
}
