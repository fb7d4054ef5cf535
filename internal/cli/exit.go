package cli

import "fmt"

// ExitError carries the process exit code of a finished run. The run's
// output has already been printed when it is returned.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
