package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownOperation is returned when an operation is neither "add" nor "update".
	ErrUnknownOperation = errors.New("unknown operation, expected add or update")

	// ErrEmptyInput is returned when a required prompt was answered with an empty line.
	ErrEmptyInput = errors.New("input must not be empty")

	// ErrSessionClosed signals that the operator asked to quit or the input stream ended.
	ErrSessionClosed = errors.New("session closed")

	// ErrPathEscapesWorkDir is returned when a file name resolves outside the working directory.
	ErrPathEscapesWorkDir = errors.New("file name escapes the working directory")
)

// exitCodeNotStarted is the ExitCode of a CommandFailure whose process never started.
const exitCodeNotStarted = -1

// CommandFailure is returned whenever a spawned process exits with a non-zero
// status or cannot be started at all. A process killed by a signal also
// reports exit code -1 but still counts as started.
type CommandFailure struct {
	Command    []string
	ExitCode   int
	Err        error
	notStarted bool
}

// NewCommandFailure creates a CommandFailure for the given command line.
func NewCommandFailure(command []string, exitCode int, err error) *CommandFailure {
	return &CommandFailure{
		Command:  command,
		ExitCode: exitCode,
		Err:      err,
	}
}

// NewCommandStartFailure creates a CommandFailure for a process that could not be spawned.
func NewCommandStartFailure(command []string, err error) *CommandFailure {
	failure := NewCommandFailure(command, exitCodeNotStarted, err)
	failure.notStarted = true
	return failure
}

// CommandLine returns the redacted command line, safe to print.
func (e *CommandFailure) CommandLine() string {
	return strings.Join(RedactCommand(e.Command), " ")
}

// Started reports whether the process was spawned before failing.
func (e *CommandFailure) Started() bool {
	return !e.notStarted
}

func (e *CommandFailure) Error() string {
	if !e.Started() {
		return fmt.Sprintf("command failed to start: %s: %v", e.CommandLine(), e.Err)
	}
	return fmt.Sprintf("command failed: %s (exit code %d)", e.CommandLine(), e.ExitCode)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *CommandFailure) Unwrap() error {
	return e.Err
}
