package orchestrator

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

type customError struct {
	error
}

// ConfigError means a required configuration value was absent. It is
// raised before any remote operation, so nothing needs compensating.
type ConfigError customError

// RemoteCommandError is a gateway call that reported failure; it is the
// trigger for transaction rollback.
type RemoteCommandError customError

// TagResolutionError is a failure to list or parse release tags. It
// propagates exactly like a RemoteCommandError.
type TagResolutionError customError

// CompensationError is a compensating action that itself failed. It is
// always reported alongside the failure that triggered the rollback.
type CompensationError customError

func NewConfigError(errorMessage string) ConfigError {
	return ConfigError{errors.New(errorMessage)}
}

func NewRemoteCommandError(errorMessage string) RemoteCommandError {
	return RemoteCommandError{errors.New(errorMessage)}
}

func NewTagResolutionError(err error) TagResolutionError {
	return TagResolutionError{errors.Wrap(err, "resolving release tags")}
}

func NewCompensationError(stepName string, err error) CompensationError {
	return CompensationError{errors.Wrapf(err, "compensating step '%s'", stepName)}
}

func NewError(errs ...error) Error {
	if len(errs) == 0 {
		return nil
	}
	return Error(errs)
}

type Error []error

func (err Error) Error() string {
	return err.PrettyError(false)
}

func (err Error) PrettyError(includeStacktrace bool) string {
	if err.IsNil() {
		return ""
	}
	var buffer = bytes.NewBufferString("")

	fmt.Fprintf(buffer, "%d error%s occurred:\n", len(err), err.getPostFix())
	for index, err := range err {
		fmt.Fprintf(buffer, "error %d:\n", index+1)
		if includeStacktrace {
			fmt.Fprintf(buffer, "%+v\n", err)
		} else {
			fmt.Fprintf(buffer, "%+v\n", err.Error())
		}
	}
	return buffer.String()
}

func (err Error) getPostFix() string {
	errorPostfix := ""
	if len(err) > 1 {
		errorPostfix = "s"
	}
	return errorPostfix
}

func (err Error) ContainsCompensationFailure() bool {
	for _, e := range err {
		if _, ok := e.(CompensationError); ok {
			return true
		}
	}
	return false
}

func (err Error) IsConfig() bool {
	if len(err) == 1 {
		_, ok := err[0].(ConfigError)
		return ok
	}
	return false
}

func (err Error) IsNil() bool {
	return len(err) == 0
}

// ProcessError turns an aggregated error into the pieces the CLI
// reports: the process exit code, the operator-facing message, and a
// stack trace suitable for dumping to a file.
func ProcessError(errs Error) (int, string, string) {
	if errs.IsNil() {
		return 0, "", ""
	}
	return BuildExitCode(errs), errs.PrettyError(false), errs.PrettyError(true)
}

func BuildExitCode(errs Error) int {
	exitCode := 0

	for _, err := range errs {
		switch err.(type) {
		case ConfigError:
			exitCode = exitCode | 1<<2
		case CompensationError:
			exitCode = exitCode | 1<<4
		default:
			exitCode = exitCode | 1
		}
	}

	return exitCode
}
