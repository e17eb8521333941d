// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/cubuild/internal/core/domain"
)

// Executor runs a single external toolchain invocation.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run blocks until the invocation finishes, streaming its output to the
	// given writers. A non-zero exit is returned as *domain.ToolchainError
	// carrying the exit code.
	Run(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error
}
