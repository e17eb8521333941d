package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrUnknownTarget is returned when a positional token is outside the
	// fixed allow-list.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrBuildFailed is the sentinel the app wraps a runner failure with so
	// callers can distinguish toolchain failures from usage errors.
	ErrBuildFailed = zerr.New("build failed")
)

// ToolchainError reports a non-zero exit from an external toolchain
// invocation. The orchestrator propagates ExitCode as its own exit status.
type ToolchainError struct {
	Step     StepName
	Argv     []string
	ExitCode int
	Err      error
}

// Error implements the error interface.
func (e *ToolchainError) Error() string {
	return fmt.Sprintf("step %s: %s exited with code %d", e.Step, e.Command(), e.ExitCode)
}

// Unwrap returns the underlying exec error.
func (e *ToolchainError) Unwrap() error { return e.Err }

// Command returns the invoked executable name, or "<none>" for an empty argv.
func (e *ToolchainError) Command() string {
	if len(e.Argv) == 0 {
		return "<none>"
	}
	return e.Argv[0]
}
