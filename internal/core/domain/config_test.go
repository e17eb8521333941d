package domain_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cubuild/internal/core/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, domain.BuildTypeRelease, cfg.BuildType)
	assert.Equal(t, domain.GPUArchNative, cfg.GPUArchs)
	assert.Equal(t, domain.GeneratorNinja, cfg.Generator)
	assert.True(t, cfg.Install)
	assert.True(t, cfg.BuildTests)
	assert.True(t, cfg.UseCugraphOps)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.PythonEditable)
	assert.False(t, cfg.BuildMGTests)
	assert.False(t, cfg.BuildMTMGTests)
	assert.False(t, cfg.CleanScoped)
}

func TestNewConfig_EachOptionSetsOneField(t *testing.T) {
	base := domain.DefaultConfig()

	tests := []struct {
		name  string
		opt   domain.Option
		check func(t *testing.T, cfg domain.BuildConfig)
	}{
		{"verbose", domain.WithVerbose(), func(t *testing.T, cfg domain.BuildConfig) {
			assert.True(t, cfg.Verbose)
		}},
		{"debug", domain.WithDebug(), func(t *testing.T, cfg domain.BuildConfig) {
			assert.Equal(t, domain.BuildTypeDebug, cfg.BuildType)
		}},
		{"no install", domain.WithoutInstall(), func(t *testing.T, cfg domain.BuildConfig) {
			assert.False(t, cfg.Install)
		}},
		{"editable", domain.WithEditableInstall(), func(t *testing.T, cfg domain.BuildConfig) {
			assert.True(t, cfg.PythonEditable)
		}},
		{"all gpu archs", domain.WithAllGPUArchs(), func(t *testing.T, cfg domain.BuildConfig) {
			assert.Equal(t, domain.GPUArchAll, cfg.GPUArchs)
		}},
		{"skip cpp tests", domain.WithoutCPPTests(), func(t *testing.T, cfg domain.BuildConfig) {
			assert.False(t, cfg.BuildTests)
		}},
		{"without cugraph-ops", domain.WithoutCugraphOps(), func(t *testing.T, cfg domain.BuildConfig) {
			assert.False(t, cfg.UseCugraphOps)
		}},
		{"mg tests", domain.WithMGTests(), func(t *testing.T, cfg domain.BuildConfig) {
			assert.True(t, cfg.BuildMGTests)
		}},
		{"mtmg tests", domain.WithMTMGTests(), func(t *testing.T, cfg domain.BuildConfig) {
			assert.True(t, cfg.BuildMTMGTests)
		}},
		{"make generator", domain.WithMakeGenerator(), func(t *testing.T, cfg domain.BuildConfig) {
			assert.Equal(t, domain.GeneratorMake, cfg.Generator)
		}},
		{"scoped clean", domain.WithScopedClean(), func(t *testing.T, cfg domain.BuildConfig) {
			assert.True(t, cfg.CleanScoped)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.NewConfig(tt.opt)
			tt.check(t, cfg)

			// Applying the option twice must give the same result.
			assert.Equal(t, cfg, domain.NewConfig(tt.opt, tt.opt))

			// No other invocation of NewConfig touches unrelated defaults;
			// verify the option changed something relative to the base.
			assert.NotEqual(t, base, cfg)
		})
	}
}

func TestNewConfig_OrderInvariance(t *testing.T) {
	opts := []domain.Option{
		domain.WithVerbose(),
		domain.WithDebug(),
		domain.WithoutInstall(),
		domain.WithEditableInstall(),
		domain.WithAllGPUArchs(),
		domain.WithoutCPPTests(),
		domain.WithoutCugraphOps(),
		domain.WithMGTests(),
		domain.WithMTMGTests(),
		domain.WithMakeGenerator(),
		domain.WithScopedClean(),
	}

	want := domain.NewConfig(opts...)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := make([]domain.Option, len(opts))
		copy(shuffled, opts)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := domain.NewConfig(shuffled...)
		require.Equal(t, want, got, "permutation %d produced a different config", i)
	}
}
