package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cubuild/internal/core/domain"
)

func mustTargets(t *testing.T, tokens ...string) domain.Targets {
	t.Helper()
	targets, err := domain.ParseTargets(tokens)
	require.NoError(t, err)
	return targets
}

func TestSelectSteps_DefaultSequence(t *testing.T) {
	want := []domain.StepName{
		domain.StepLibcugraph,
		domain.StepLibcugraphETL,
		domain.StepPylibcugraph,
		domain.StepCugraph,
	}

	// The default sequence applies whenever no positional target was given,
	// regardless of which flags are present.
	configs := []domain.BuildConfig{
		domain.NewConfig(),
		domain.NewConfig(domain.WithDebug(), domain.WithVerbose()),
		domain.NewConfig(domain.WithAllGPUArchs(), domain.WithoutInstall()),
	}
	for _, cfg := range configs {
		got := domain.SelectSteps(mustTargets(t), cfg)
		assert.Equal(t, want, got)
	}
}

func TestSelectSteps_All(t *testing.T) {
	got := domain.SelectSteps(mustTargets(t, "all"), domain.NewConfig())

	want := []domain.StepName{
		domain.StepLibcugraph,
		domain.StepLibcugraphETL,
		domain.StepPylibcugraph,
		domain.StepCugraph,
		domain.StepCugraphService,
		domain.StepDocs,
	}
	assert.Equal(t, want, got)
}

func TestSelectSteps_ExplicitTargetOnly(t *testing.T) {
	got := domain.SelectSteps(mustTargets(t, "libcugraph"), domain.NewConfig(domain.WithDebug()))
	assert.Equal(t, []domain.StepName{domain.StepLibcugraph}, got)
}

func TestSelectSteps_CleanAndUninstallRunFirst(t *testing.T) {
	// Target order on the command line does not matter; clean precedes
	// uninstall precedes everything else.
	got := domain.SelectSteps(mustTargets(t, "cugraph", "uninstall", "libcugraph", "clean"), domain.NewConfig())

	want := []domain.StepName{
		domain.StepClean,
		domain.StepUninstall,
		domain.StepLibcugraph,
		domain.StepCugraph,
	}
	assert.Equal(t, want, got)
}

func TestSelectSteps_CleanAloneSelectsNoBuildStep(t *testing.T) {
	got := domain.SelectSteps(mustTargets(t, "clean"), domain.NewConfig())
	assert.Equal(t, []domain.StepName{domain.StepClean}, got)
}

func TestSelectSteps_TestFlagsImplyTestSteps(t *testing.T) {
	cfg := domain.NewConfig(domain.WithMGTests(), domain.WithMTMGTests())

	got := domain.SelectSteps(mustTargets(t, "libcugraph"), cfg)

	want := []domain.StepName{
		domain.StepLibcugraph,
		domain.StepCPPMGTests,
		domain.StepCPPMTMGTests,
	}
	assert.Equal(t, want, got)
}

func TestSelectSteps_TopologicalOrderIsFixed(t *testing.T) {
	// Naming targets in reverse dependency order must not change execution order.
	got := domain.SelectSteps(mustTargets(t, "docs", "cugraph", "pylibcugraph", "libcugraph_etl", "libcugraph"), domain.NewConfig())

	want := []domain.StepName{
		domain.StepLibcugraph,
		domain.StepLibcugraphETL,
		domain.StepPylibcugraph,
		domain.StepCugraph,
		domain.StepDocs,
	}
	assert.Equal(t, want, got)
}
