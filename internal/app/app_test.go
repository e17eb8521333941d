package app_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cubuild/internal/app"
	"go.trai.ch/cubuild/internal/core/domain"
	"go.trai.ch/cubuild/internal/core/ports/mocks"
	"go.trai.ch/cubuild/internal/engine/runner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type harness struct {
	settings *mocks.MockSettingsLoader
	executor *mocks.MockExecutor
	cleaner  *mocks.MockCleaner
	app      *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	settings := mocks.NewMockSettingsLoader(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	cleaner := mocks.NewMockCleaner(ctrl)

	store := mocks.NewMockStampStore(ctrl)
	store.EXPECT().Get(gomock.Any()).Return("", false).AnyTimes()
	store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	span.EXPECT().Stderr().Return(io.Discard).AnyTimes()
	span.EXPECT().Complete(gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().StartStep(gomock.Any(), gomock.Any()).Return(span).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	r := runner.New(executor, cleaner, store, tracer, logger)

	return &harness{
		settings: settings,
		executor: executor,
		cleaner:  cleaner,
		app:      app.New(settings, r, logger),
	}
}

func TestRun_UnknownTarget(t *testing.T) {
	h := newHarness(t)

	results, err := h.app.Run(context.Background(), ".", []string{"libcugraph", "bogus"}, nil)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, domain.ErrUnknownTarget)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "bogus", zErr.Metadata()["token"])
}

func TestRun_SettingsLoadFailure(t *testing.T) {
	h := newHarness(t)

	h.settings.EXPECT().Load(".").Return(domain.Settings{}, zerr.New("bad workspace file"))

	_, err := h.app.Run(context.Background(), ".", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading settings")
}

func TestRun_DefaultSequence(t *testing.T) {
	h := newHarness(t)

	h.settings.EXPECT().Load(".").Return(domain.Settings{
		RepoRoot:      "/repo",
		InstallPrefix: "/opt/prefix",
		ParallelLevel: 2,
	}, nil)

	// Two cmake steps at three invocations each, two pip installs.
	h.executor.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(8)

	results, err := h.app.Run(context.Background(), ".", nil, nil)
	require.NoError(t, err)

	require.Len(t, results, 4)
	for _, res := range results {
		assert.Equal(t, domain.StatusSucceeded, res.Status)
	}
}

func TestRun_ToolchainFailurePropagatesExitCode(t *testing.T) {
	h := newHarness(t)

	h.settings.EXPECT().Load(".").Return(domain.Settings{RepoRoot: "/repo"}, nil)

	toolErr := &domain.ToolchainError{
		Step:     domain.StepLibcugraph,
		Argv:     []string{"cmake"},
		ExitCode: 2,
	}
	h.executor.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(toolErr)

	results, err := h.app.Run(context.Background(), ".", nil, nil)
	require.Error(t, err)

	var failed *domain.ToolchainError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, 2, failed.ExitCode)

	require.Len(t, results, 4)
	assert.Equal(t, domain.StatusFailed, results[0].Status)
	assert.Equal(t, domain.StatusSkipped, results[1].Status)
	assert.Equal(t, domain.StatusSkipped, results[2].Status)
	assert.Equal(t, domain.StatusSkipped, results[3].Status)
}

func TestRun_CleanOnly(t *testing.T) {
	h := newHarness(t)

	h.settings.EXPECT().Load(".").Return(domain.Settings{RepoRoot: "/repo"}, nil)
	h.cleaner.EXPECT().Clean(gomock.Any(), gomock.Len(6)).Return(nil)

	results, err := h.app.Run(context.Background(), ".", []string{"clean"}, nil)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, domain.StepClean, results[0].Name)
	assert.Equal(t, domain.StatusSucceeded, results[0].Status)
}
