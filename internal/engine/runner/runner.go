// Package runner executes a materialized plan strictly sequentially. Later
// steps locate artifacts installed by earlier ones, so there is no step
// level concurrency, no retry, and the first failure halts the run.
package runner

import (
	"context"

	"go.trai.ch/cubuild/internal/core/domain"
	"go.trai.ch/cubuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner walks a plan step by step.
type Runner struct {
	executor ports.Executor
	cleaner  ports.Cleaner
	store    ports.StampStore
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a Runner.
func New(
	executor ports.Executor,
	cleaner ports.Cleaner,
	store ports.StampStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *Runner {
	return &Runner{
		executor: executor,
		cleaner:  cleaner,
		store:    store,
		tracer:   tracer,
		logger:   logger,
	}
}

// Run executes the plan in order. Each step moves Pending -> Running ->
// Succeeded or Failed; Failed is terminal and every remaining step is
// reported Skipped. The returned error wraps the failing step's
// *domain.ToolchainError, so callers can propagate the toolchain's exit
// code.
func (r *Runner) Run(ctx context.Context, plan *domain.Plan) ([]domain.StepResult, error) {
	results := make([]domain.StepResult, len(plan.Steps))
	for i, step := range plan.Steps {
		results[i] = domain.StepResult{Name: step.Name, Status: domain.StatusPending}
	}

	for i := range plan.Steps {
		step := &plan.Steps[i]
		results[i].Status = domain.StatusRunning
		r.logger.Info("running step " + step.Name.String())

		span := r.tracer.StartStep(ctx, step.Name.String())
		err := r.runStep(ctx, step, span)
		span.Complete(err)

		if err != nil {
			results[i].Status = domain.StatusFailed
			for j := i + 1; j < len(results); j++ {
				results[j].Status = domain.StatusSkipped
			}
			wrapped := zerr.With(zerr.Wrap(err, "step failed"), "step", step.Name.String())
			return results, wrapped
		}
		results[i].Status = domain.StatusSucceeded
	}

	return results, nil
}

func (r *Runner) runStep(ctx context.Context, step *domain.Step, span ports.Span) error {
	switch step.Action {
	case domain.ActionClean:
		return r.cleaner.Clean(ctx, step.CleanDirs)
	case domain.ActionUninstall:
		if err := r.cleaner.Uninstall(ctx, step.Manifests); err != nil {
			return err
		}
		return r.runInvocations(ctx, step, span)
	default:
		r.reconcileStamp(ctx, step)
		if err := r.runInvocations(ctx, step, span); err != nil {
			return err
		}
		r.recordStamp(step)
		return nil
	}
}

func (r *Runner) runInvocations(ctx context.Context, step *domain.Step, span ports.Span) error {
	for _, inv := range step.Invocations {
		if err := r.executor.Run(ctx, inv, span.Stdout(), span.Stderr()); err != nil {
			return err
		}
	}
	return nil
}

// reconcileStamp purges the cmake cache when the configure arguments drifted
// since the last run. cmake refuses to reuse a cache produced with a
// different generator, so a stale cache would otherwise fail the configure.
func (r *Runner) reconcileStamp(ctx context.Context, step *domain.Step) {
	if step.Stamp == nil {
		return
	}
	prev, ok := r.store.Get(step.Name.String())
	if !ok || prev == domain.ConfigFingerprint(step.Stamp.Argv) {
		return
	}

	r.logger.Info("configure arguments changed for " + step.Name.String() + ", purging cmake cache")
	if err := r.cleaner.Remove(ctx, step.Stamp.CachePaths); err != nil {
		r.logger.Warn("cache purge incomplete: " + err.Error())
	}
}

// recordStamp persists the configure fingerprint. Store failures only log;
// losing a stamp costs at most one extra purge on the next run.
func (r *Runner) recordStamp(step *domain.Step) {
	if step.Stamp == nil {
		return
	}
	fp := domain.ConfigFingerprint(step.Stamp.Argv)
	if err := r.store.Put(step.Name.String(), fp); err != nil {
		r.logger.Warn("could not record configure stamp: " + err.Error())
	}
}
