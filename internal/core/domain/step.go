// Package domain contains the core domain model for the build orchestrator:
// the fixed step universe, the resolved build configuration, and the
// execution plan handed to the runner.
package domain

// StepName identifies one named build unit.
type StepName string

// The fixed universe of positional targets. There is no dynamic discovery;
// anything outside this list is a usage error.
const (
	StepClean          StepName = "clean"
	StepUninstall      StepName = "uninstall"
	StepLibcugraph     StepName = "libcugraph"
	StepLibcugraphETL  StepName = "libcugraph_etl"
	StepCPPMGTests     StepName = "cpp-mgtests"
	StepCPPMTMGTests   StepName = "cpp-mtmgtests"
	StepPylibcugraph   StepName = "pylibcugraph"
	StepCugraph        StepName = "cugraph"
	StepCugraphService StepName = "cugraph-service"
	StepDocs           StepName = "docs"

	// TargetAll is a pseudo-target expanding to every build step.
	TargetAll StepName = "all"
)

// String returns the step name as typed on the command line.
func (s StepName) String() string { return string(s) }

// executionOrder is the fixed topological order of all steps. Later steps
// locate artifacts installed by earlier ones, so the runner never reorders.
var executionOrder = []StepName{
	StepClean,
	StepUninstall,
	StepLibcugraph,
	StepLibcugraphETL,
	StepCPPMGTests,
	StepCPPMTMGTests,
	StepPylibcugraph,
	StepCugraph,
	StepCugraphService,
	StepDocs,
}

// buildSteps are the steps selected by the "all" pseudo-target and the pool
// the default sequence draws from. The flag-gated test steps are excluded;
// they join a plan only via their flag or by being named.
var buildSteps = []StepName{
	StepLibcugraph,
	StepLibcugraphETL,
	StepPylibcugraph,
	StepCugraph,
	StepCugraphService,
	StepDocs,
}

// defaultSequence is what runs when no positional target is given.
var defaultSequence = []StepName{
	StepLibcugraph,
	StepLibcugraphETL,
	StepPylibcugraph,
	StepCugraph,
}

// ActionKind classifies what the runner does for a step.
type ActionKind string

const (
	// ActionClean removes build-output directory contents.
	ActionClean ActionKind = "clean"
	// ActionUninstall deletes manifest-listed files and uninstalls packages.
	ActionUninstall ActionKind = "uninstall"
	// ActionBuild shells out to the external toolchain.
	ActionBuild ActionKind = "build"
)

// StepStatus represents the lifecycle state of a step.
type StepStatus string

const (
	// StatusPending indicates the step is queued and has not started.
	StatusPending StepStatus = "pending"
	// StatusRunning indicates the step is currently executing.
	StatusRunning StepStatus = "running"
	// StatusSucceeded indicates every invocation of the step finished cleanly.
	StatusSucceeded StepStatus = "succeeded"
	// StatusFailed indicates an invocation exited non-zero. Failed is terminal
	// for the whole run; nothing after the failing step is attempted.
	StatusFailed StepStatus = "failed"
	// StatusSkipped indicates the step was never reached because an earlier
	// step failed.
	StatusSkipped StepStatus = "skipped"
)

// IsTerminal reports whether a status is a final state.
func (s StepStatus) IsTerminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusSkipped:
		return true
	default:
		return false
	}
}

// StepResult is the terminal status of one planned step after a run.
type StepResult struct {
	Name   StepName
	Status StepStatus
}

// Step is one fully materialized unit of the plan. Everything the runner
// needs is resolved before the first action executes: a step carries its
// own invocations, clean directories, and manifests, and cannot add or
// remove other steps.
type Step struct {
	Name   StepName
	Action ActionKind

	// Invocations are executed in order; the first non-zero exit aborts the
	// step and the remaining sequence.
	Invocations []Invocation

	// CleanDirs are the directories whose contents ActionClean removes.
	CleanDirs []string

	// Manifests are cmake install_manifest.txt paths consumed by
	// ActionUninstall. A missing manifest is not an error.
	Manifests []string

	// Stamp, when set, lets the runner detect configure-argument drift and
	// purge the stale cmake cache before configuring.
	Stamp *Stamp
}

// Stamp describes the configure fingerprint of a cmake step.
type Stamp struct {
	// Argv is the full configure command line the fingerprint covers.
	Argv []string
	// CachePaths are the files and directories to purge from the build dir
	// when the fingerprint changed (cmake refuses to reuse a cache made with
	// a different generator).
	CachePaths []string
}
