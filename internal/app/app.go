// Package app resolves one invocation end to end: it validates the
// positional targets, folds the flag options into a configuration, loads
// the workspace settings, materializes the plan, and hands it to the
// runner.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/cubuild/internal/core/domain"
	"go.trai.ch/cubuild/internal/core/ports"
	"go.trai.ch/cubuild/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App wires the resolution pipeline to the runner.
type App struct {
	settings ports.SettingsLoader
	runner   *runner.Runner
	logger   ports.Logger
}

// New creates an App.
func New(settings ports.SettingsLoader, r *runner.Runner, log ports.Logger) *App {
	return &App{settings: settings, runner: r, logger: log}
}

// Run resolves and executes one invocation rooted at repoRoot. The returned
// results cover every selected step, including the ones skipped after a
// failure. Target validation and settings loading fail before any step
// runs.
func (a *App) Run(ctx context.Context, repoRoot string, targets []string, opts []domain.Option) ([]domain.StepResult, error) {
	t, err := domain.ParseTargets(targets)
	if err != nil {
		return nil, err
	}

	cfg := domain.NewConfig(opts...)

	st, err := a.settings.Load(repoRoot)
	if err != nil {
		return nil, zerr.Wrap(err, "loading settings")
	}

	plan := materialize(t, cfg, st)
	a.logger.Info(fmt.Sprintf("plan: %d steps, prefix %s", len(plan.Steps), st.InstallPrefix))

	results, err := a.runner.Run(ctx, plan)
	if err != nil {
		return results, zerr.Wrap(err, domain.ErrBuildFailed.Error())
	}
	return results, nil
}
