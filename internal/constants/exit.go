package constants

// Process exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitIssuesFound = 2
)
