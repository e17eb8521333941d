// Package cmake assembles cmake command lines from the resolved build
// configuration. Arguments are built as structured argv lists, never
// interpolated shell strings.
package cmake

import (
	"strconv"
	"strings"

	"go.trai.ch/cubuild/internal/core/domain"
)

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// definitions returns the -D cache entries shared by the configure call and
// the skbuild pass-through of the Python builds.
func definitions(step domain.StepName, cfg domain.BuildConfig, st domain.Settings) []string {
	defs := []string{
		"-DCMAKE_INSTALL_PREFIX=" + st.InstallPrefix,
		"-DCMAKE_BUILD_TYPE=" + string(cfg.BuildType),
		"-DCMAKE_CUDA_ARCHITECTURES=" + string(cfg.GPUArchs),
		"-DBUILD_TESTS=" + onOff(cfg.BuildTests),
	}

	if step == domain.StepLibcugraph {
		defs = append(defs,
			"-DUSE_CUGRAPH_OPS="+onOff(cfg.UseCugraphOps),
			"-DBUILD_CUGRAPH_MG_TESTS="+onOff(cfg.BuildMGTests),
			"-DBUILD_CUGRAPH_MTMG_TESTS="+onOff(cfg.BuildMTMGTests),
		)
	}

	defs = append(defs, st.ExtraCMakeArgs...)
	defs = append(defs, st.StepExtraArgs[step]...)
	return defs
}

// Configure returns the configure invocation for a cmake step.
func Configure(step domain.StepName, cfg domain.BuildConfig, st domain.Settings) domain.Invocation {
	argv := []string{
		"cmake",
		"-S", st.SourceDir(step),
		"-B", st.BuildDir(step),
		"-G", string(cfg.Generator),
	}
	argv = append(argv, definitions(step, cfg, st)...)

	return domain.Invocation{Argv: argv}
}

// Build returns the build invocation for an already-configured build dir.
// Extra targets narrow the build to specific cmake targets.
func Build(dir string, cfg domain.BuildConfig, parallel int, targets ...string) domain.Invocation {
	argv := []string{"cmake", "--build", dir, "-j" + strconv.Itoa(parallel)}
	if len(targets) > 0 {
		argv = append(argv, "--target")
		argv = append(argv, targets...)
	}
	if cfg.Verbose {
		argv = append(argv, "-v")
	}
	return domain.Invocation{Argv: argv}
}

// Install returns the install invocation for a build dir.
func Install(dir string) domain.Invocation {
	return domain.Invocation{Argv: []string{"cmake", "--install", dir}}
}

// PassThrough joins the cache entries with ";" for SKBUILD_CMAKE_ARGS, the
// argument-separator convention scikit-build expects.
func PassThrough(step domain.StepName, cfg domain.BuildConfig, st domain.Settings) string {
	return strings.Join(definitions(step, cfg, st), ";")
}
