package cli

// Exit codes for the ccnotify CLI. Dispatch outcomes (suppressed
// notification, no window found, sound fallback) are all success; only
// a failed config mutation or invalid input is non-zero.
const (
	ExitSuccess          = 0
	ExitSaveFailed       = 1
	ExitInvalidArguments = 2
)

// exitError carries an exit code alongside the underlying error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// NewExitError wraps err with an exit code for main to report.
func NewExitError(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode returns the process exit code for an error from Execute.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitSaveFailed
}
