package envcfg_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cubuild/internal/adapters/config"
	"go.trai.ch/cubuild/internal/adapters/envcfg"
	"go.trai.ch/cubuild/internal/core/domain"
)

func load(t *testing.T, repo string) domain.Settings {
	t.Helper()
	st, err := envcfg.NewLoader(config.NewFileLoader()).Load(repo)
	require.NoError(t, err)
	return st
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		envcfg.EnvInstallPrefix, envcfg.EnvCondaPrefix, envcfg.EnvParallelLevel,
		envcfg.EnvExtraCMakeArgs, "LIBCUGRAPH_BUILD_DIR", "LIBCUGRAPH_ETL_BUILD_DIR",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	st := load(t, t.TempDir())

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local"), st.InstallPrefix)
	assert.Equal(t, runtime.NumCPU(), st.ParallelLevel)
	assert.Empty(t, st.ExtraCMakeArgs)
}

func TestLoad_CondaPrefixFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv(envcfg.EnvCondaPrefix, "/opt/conda/envs/cugraph")

	st := load(t, t.TempDir())
	assert.Equal(t, "/opt/conda/envs/cugraph", st.InstallPrefix)

	// An explicit INSTALL_PREFIX wins over CONDA_PREFIX.
	t.Setenv(envcfg.EnvInstallPrefix, "/usr/local")
	st = load(t, t.TempDir())
	assert.Equal(t, "/usr/local", st.InstallPrefix)
}

func TestLoad_EnvBeatsWorkspaceFile(t *testing.T) {
	clearEnv(t)

	repo := t.TempDir()
	workspace := "prefix: /from-file\nparallel: 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(repo, config.DefaultFilename), []byte(workspace), 0o600))

	t.Setenv(envcfg.EnvInstallPrefix, "/from-env")
	t.Setenv(envcfg.EnvParallelLevel, "12")

	st := load(t, repo)
	assert.Equal(t, "/from-env", st.InstallPrefix)
	assert.Equal(t, 12, st.ParallelLevel)
}

func TestLoad_ExtraCMakeArgsSplit(t *testing.T) {
	clearEnv(t)
	t.Setenv(envcfg.EnvExtraCMakeArgs, "-DFOO=1  -DBAR=2")

	st := load(t, t.TempDir())
	assert.Equal(t, []string{"-DFOO=1", "-DBAR=2"}, st.ExtraCMakeArgs)
}

func TestLoad_BuildDirOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LIBCUGRAPH_BUILD_DIR", "/scratch/core-build")

	st := load(t, t.TempDir())
	assert.Equal(t, "/scratch/core-build", st.BuildDir(domain.StepLibcugraph))
	assert.Equal(t,
		filepath.Join(st.RepoRoot, "cpp", "libcugraph_etl", "build"),
		st.BuildDir(domain.StepLibcugraphETL))
}
