// Package envcfg resolves the final workspace settings: built-in defaults,
// overridden by the optional workspace file, overridden by environment
// variables. The environment surface mirrors the variables the original
// shell wrapper honored, so existing CI setups keep working.
package envcfg

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/cubuild/internal/adapters/config"
	"go.trai.ch/cubuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables consumed, in addition to the per-step build dir
// overrides below.
const (
	EnvInstallPrefix  = "INSTALL_PREFIX"
	EnvCondaPrefix    = "CONDA_PREFIX"
	EnvParallelLevel  = "PARALLEL_LEVEL"
	EnvExtraCMakeArgs = "EXTRA_CMAKE_ARGS"
)

// buildDirEnv maps the overridable steps to their build-dir variables.
var buildDirEnv = map[domain.StepName]string{
	domain.StepLibcugraph:    "LIBCUGRAPH_BUILD_DIR",
	domain.StepLibcugraphETL: "LIBCUGRAPH_ETL_BUILD_DIR",
}

// Loader implements ports.SettingsLoader.
type Loader struct {
	file *config.FileLoader
}

// NewLoader creates a Loader layering environment overrides over the given
// workspace-file loader.
func NewLoader(file *config.FileLoader) *Loader {
	return &Loader{file: file}
}

// Load resolves the settings for the given repository root.
func (l *Loader) Load(repoRoot string) (domain.Settings, error) {
	st, err := l.file.Load(repoRoot)
	if err != nil {
		return domain.Settings{}, err
	}

	v := viper.New()
	if err := v.BindEnv("install_prefix", EnvInstallPrefix, EnvCondaPrefix); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to bind environment")
	}
	if err := v.BindEnv("parallel_level", EnvParallelLevel); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to bind environment")
	}
	if err := v.BindEnv("extra_cmake_args", EnvExtraCMakeArgs); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to bind environment")
	}

	if prefix := v.GetString("install_prefix"); prefix != "" {
		st.InstallPrefix = prefix
	}
	if parallel := v.GetInt("parallel_level"); parallel > 0 {
		st.ParallelLevel = parallel
	}
	if extra := v.GetString("extra_cmake_args"); extra != "" {
		// The variable is a single space-separated string; normalize it into
		// an argv list here, once.
		st.ExtraCMakeArgs = strings.Fields(extra)
	}

	for step, env := range buildDirEnv {
		if dir := os.Getenv(env); dir != "" {
			if st.BuildDirs == nil {
				st.BuildDirs = make(map[domain.StepName]string)
			}
			st.BuildDirs[step] = dir
		}
	}

	applyDefaults(&st)
	return st, nil
}

func applyDefaults(st *domain.Settings) {
	if st.InstallPrefix == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		st.InstallPrefix = filepath.Join(home, ".local")
	}
	if st.ParallelLevel <= 0 {
		st.ParallelLevel = runtime.NumCPU()
	}
}
