package report

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wizzomafizzo/linelint/internal/linter"
	"github.com/wizzomafizzo/linelint/internal/rules"
)

func TestIssues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		want   string
		issues []rules.Issue
	}{
		{
			name:   "no issues",
			issues: nil,
			want:   "No issues found.\n",
		},
		{
			name: "issues in order",
			issues: []rules.Issue{
				{Rule: "LineEnd", Filename: "a.txt", Description: "File does not end with the expected line ending", Line: 3},
				{Rule: "TrailingWhitespace", Filename: "a.txt", Description: "Line contains trailing whitespace", Line: 1},
			},
			want: "LineEnd: File does not end with the expected line ending in file a.txt at line 3\n" +
				"TrailingWhitespace: Line contains trailing whitespace in file a.txt at line 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out, errOut bytes.Buffer
			New(&out, &errOut, false).Issues(tt.issues)

			assert.Equal(t, tt.want, out.String())
			assert.Empty(t, errOut.String())
		})
	}
}

func TestIssuesMatchIssueString(t *testing.T) {
	t.Parallel()

	issue := rules.Issue{Rule: "LineEnd", Filename: "f", Description: "d", Line: 7}

	var out bytes.Buffer
	New(&out, &out, false).Issues([]rules.Issue{issue})

	assert.Equal(t, issue.String()+"\n", out.String())
}

func TestColors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	New(&out, &out, true).Issues([]rules.Issue{{Rule: "LineEnd", Filename: "f", Description: "d", Line: 1}})

	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "LineEnd")
}

func TestFormatted(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	New(&out, &out, false).Formatted()

	assert.Equal(t, "Files formatted successfully.\n", out.String())
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		name   string
		action string
		want   string
	}{
		{
			name:   "nil",
			action: "checking",
			err:    nil,
			want:   "",
		},
		{
			name:   "single",
			action: "formatting",
			err:    errors.New("boom"),
			want:   "Error formatting files: boom\n",
		},
		{
			name:   "collected",
			action: "checking",
			err: fmt.Errorf("run: %w", linter.Errors{
				&linter.TraversalError{Path: "/a", Err: errors.New("denied")},
				&linter.TraversalError{Path: "/b", Err: errors.New("broken link")},
			}),
			want: "Error checking files: /a: denied\nError checking files: /b: broken link\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out, errOut bytes.Buffer
			New(&out, &errOut, false).Errors(tt.action, tt.err)

			assert.Equal(t, tt.want, errOut.String())
			assert.Empty(t, out.String())
		})
	}
}
