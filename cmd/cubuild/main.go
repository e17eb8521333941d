// Package main is the entry point for the cubuild CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/cubuild/cmd/cubuild/commands"
	"go.trai.ch/cubuild/internal/app"
	"go.trai.ch/cubuild/internal/core/domain"
	_ "go.trai.ch/cubuild/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available when initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	defer func() {
		if err := components.Tracer.Close(); err != nil {
			components.Logger.Warn("closing progress recorder: " + err.Error())
		}
	}()

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)

		// A toolchain failure surfaces its own exit code.
		var toolErr *domain.ToolchainError
		if errors.As(err, &toolErr) && toolErr.ExitCode > 0 {
			return toolErr.ExitCode
		}
		return 1
	}
	return 0
}
