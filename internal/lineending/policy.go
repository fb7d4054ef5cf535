// Package lineending resolves which line terminator a file is expected to use.
package lineending

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Unix is the LF line terminator.
	Unix = "\n"
	// Windows is the CRLF line terminator.
	Windows = "\r\n"
)

// ErrUnknownPolicy is returned by Parse for an unrecognized policy name.
var ErrUnknownPolicy = errors.New("unknown line ending policy")

// Policy selects the canonical line ending for file content.
type Policy int

const (
	// Auto picks Windows if the content contains CRLF anywhere, Unix otherwise.
	Auto Policy = iota
	// UnixPolicy always resolves to LF.
	UnixPolicy
	// WindowsPolicy always resolves to CRLF.
	WindowsPolicy
)

// Resolve returns the line ending content is expected to use under p.
func (p Policy) Resolve(content string) string {
	switch p {
	case UnixPolicy:
		return Unix
	case WindowsPolicy:
		return Windows
	default:
		return Detect(content)
	}
}

// Detect reports Windows if content contains a CRLF sequence anywhere,
// not only at line ends.
func Detect(content string) string {
	if strings.Contains(content, Windows) {
		return Windows
	}
	return Unix
}

func (p Policy) String() string {
	switch p {
	case UnixPolicy:
		return "unix"
	case WindowsPolicy:
		return "windows"
	default:
		return "auto"
	}
}

// Parse converts a policy name as found in config files and flags.
func Parse(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "unix", "lf":
		return UnixPolicy, nil
	case "windows", "crlf":
		return WindowsPolicy, nil
	default:
		return Auto, fmt.Errorf("%w: %q (want auto, unix or windows)", ErrUnknownPolicy, s)
	}
}

// UnmarshalYAML lets a Policy be written by name in YAML config.
func (p *Policy) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML writes the policy by name.
func (p Policy) MarshalYAML() (any, error) {
	return p.String(), nil
}
