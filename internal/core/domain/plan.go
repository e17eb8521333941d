package domain

import "go.trai.ch/zerr"

func zerrWithToken(tok string) error {
	return zerr.With(ErrUnknownTarget, "token", tok)
}

// SelectSteps determines the ordered step names for one invocation. The
// selection is made once, before any action runs, and always follows the
// fixed topological order no matter how targets were listed:
//
//   - no positional targets: the fixed default sequence
//   - "all": every build step
//   - otherwise: exactly the named steps, plus the test steps implied by
//     the multi-GPU test flags
//
// "clean" and "uninstall" run first, in that relative order, and never
// select a build step by themselves.
func SelectSteps(t Targets, cfg BuildConfig) []StepName {
	selected := make(map[StepName]bool, len(executionOrder))

	switch {
	case !t.Explicit():
		for _, s := range defaultSequence {
			selected[s] = true
		}
	case t.All:
		for _, s := range buildSteps {
			selected[s] = true
		}
	}

	for _, s := range t.Steps {
		selected[s] = true
	}
	if t.Explicit() {
		// The test flags imply their build step even when it was not named.
		if cfg.BuildMGTests {
			selected[StepCPPMGTests] = true
		}
		if cfg.BuildMTMGTests {
			selected[StepCPPMTMGTests] = true
		}
	}

	selected[StepClean] = t.Clean
	selected[StepUninstall] = t.Uninstall

	order := make([]StepName, 0, len(selected))
	for _, s := range executionOrder {
		if selected[s] {
			order = append(order, s)
		}
	}
	return order
}

// BuildStepNames returns the full build-step universe in execution order.
// The cleaner uses it to enumerate every known build-output directory.
func BuildStepNames() []StepName {
	out := make([]StepName, len(executionOrder)-2)
	copy(out, executionOrder[2:])
	return out
}

// Plan is the ordered, fully materialized sequence of steps for one
// invocation. Steps never run concurrently; later steps depend on the
// artifacts earlier ones installed.
type Plan struct {
	Steps []Step
}
