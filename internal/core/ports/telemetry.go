package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer records per-step progress.
type Tracer interface {
	// StartStep opens a span for a step about to run.
	StartStep(ctx context.Context, name string) Span
	// Close flushes the recorder.
	Close() error
}

// Span represents one running step.
type Span interface {
	// Stdout returns the writer toolchain stdout is streamed to.
	Stdout() io.Writer
	// Stderr returns the writer toolchain stderr is streamed to.
	Stderr() io.Writer
	// Complete marks the span finished, successfully or with an error.
	Complete(err error)
}
