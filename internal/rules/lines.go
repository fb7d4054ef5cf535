package rules

import (
	"strings"
	"unicode"
)

// splitLines splits content into logical lines. Lines end at "\n" or
// "\r\n" and the terminator is dropped. An empty fragment after the last
// terminator is not a line; an unterminated final fragment is, and keeps
// any "\r" it ends with.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	last := len(lines) - 1
	terminated := lines[last] == ""
	if terminated {
		lines = lines[:last]
	}

	for i := range lines {
		if i == last {
			break
		}
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

// lineCount is the number of logical lines in content.
func lineCount(content string) int {
	return len(splitLines(content))
}

func trimTrailingSpace(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}
