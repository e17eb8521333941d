// Package shell provides the toolchain executor adapter built on os/exec.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/cubuild/internal/core/domain"
	"go.trai.ch/cubuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Run blocks until the invocation finishes. The subprocess environment is
// the orchestrator's own environment with inv.Env layered on top. A non-zero
// exit comes back as *domain.ToolchainError so the caller can propagate the
// toolchain's exit status.
func (e *Executor) Run(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error {
	if len(inv.Argv) == 0 {
		return zerr.New("empty invocation")
	}

	e.logger.Info("exec: " + strings.Join(inv.Argv, " "))

	cmd := exec.CommandContext(ctx, inv.Argv[0], inv.Argv[1:]...) //nolint:gosec // argv is assembled by the typed builders
	cmd.Dir = inv.Dir
	cmd.Env = mergeEnvironment(os.Environ(), inv.Env)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1 // unknown or signal
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return &domain.ToolchainError{
			Argv:     inv.Argv,
			ExitCode: exitCode,
			Err:      err,
		}
	}

	return nil
}

// mergeEnvironment layers overrides on top of the base KEY=VALUE list.
func mergeEnvironment(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		k, _, ok := strings.Cut(entry, "=")
		if ok {
			if _, shadowed := overrides[k]; shadowed {
				continue
			}
		}
		merged = append(merged, entry)
	}
	for k, v := range overrides {
		merged = append(merged, k+"="+v)
	}
	return merged
}
