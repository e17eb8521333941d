// Package telemetry provides the step progress recorders. The plain
// recorder streams toolchain output straight through, which is what CI logs
// and verbose runs want; the progrock subpackage records a progress tape.
package telemetry

import (
	"context"
	"io"
	"os"

	"go.trai.ch/cubuild/internal/core/ports"
)

// Plain implements ports.Tracer by passing toolchain output through to the
// given writers unmodified.
type Plain struct {
	stdout io.Writer
	stderr io.Writer
}

// NewPlain creates a pass-through recorder. Nil writers default to the
// process streams.
func NewPlain(stdout, stderr io.Writer) *Plain {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Plain{stdout: stdout, stderr: stderr}
}

// StartStep opens a span for a step about to run.
func (p *Plain) StartStep(_ context.Context, _ string) ports.Span {
	return &plainSpan{stdout: p.stdout, stderr: p.stderr}
}

// Close implements ports.Tracer; the plain recorder holds no state.
func (p *Plain) Close() error { return nil }

type plainSpan struct {
	stdout io.Writer
	stderr io.Writer
}

func (s *plainSpan) Stdout() io.Writer { return s.stdout }
func (s *plainSpan) Stderr() io.Writer { return s.stderr }
func (s *plainSpan) Complete(error)    {}
