package domain

import "path/filepath"

// Settings are the resolved workspace-level values every build action reads:
// where to install, how parallel to build, which extra arguments to forward,
// and where each step writes its build output. Precedence is
// environment > workspace file > defaults, resolved once at startup.
type Settings struct {
	// RepoRoot is the repository checkout the orchestrator operates in.
	RepoRoot string
	// InstallPrefix is passed to cmake --install and the Python builds.
	InstallPrefix string
	// ParallelLevel is the -j pass-through for the native builds.
	ParallelLevel int
	// ExtraCMakeArgs are forwarded verbatim to every cmake configure, and
	// joined with ";" for the skbuild pass-through.
	ExtraCMakeArgs []string
	// BuildDirs maps every step to its build-output directory.
	BuildDirs map[StepName]string
	// StepExtraArgs are per-step additions from the workspace file.
	StepExtraArgs map[StepName][]string
}

// BuildDir returns the build-output directory for a step, falling back to
// the default layout when no override is present.
func (s Settings) BuildDir(step StepName) string {
	if dir, ok := s.BuildDirs[step]; ok && dir != "" {
		return dir
	}
	return DefaultBuildDirs(s.RepoRoot)[step]
}

// DefaultBuildDirs returns the repository-relative build-output directory of
// every build step. The test-binary steps share the core build dir because
// their targets live in the core cmake project.
func DefaultBuildDirs(repoRoot string) map[StepName]string {
	cpp := filepath.Join(repoRoot, "cpp", "build")
	return map[StepName]string{
		StepLibcugraph:     cpp,
		StepLibcugraphETL:  filepath.Join(repoRoot, "cpp", "libcugraph_etl", "build"),
		StepCPPMGTests:     cpp,
		StepCPPMTMGTests:   cpp,
		StepPylibcugraph:   filepath.Join(repoRoot, "python", "pylibcugraph", "build"),
		StepCugraph:        filepath.Join(repoRoot, "python", "cugraph", "build"),
		StepCugraphService: filepath.Join(repoRoot, "python", "cugraph-service", "build"),
		StepDocs:           filepath.Join(repoRoot, "docs", "cugraph", "build"),
	}
}

// SourceDir returns the source directory of a cmake or Python step.
func (s Settings) SourceDir(step StepName) string {
	switch step {
	case StepLibcugraph, StepCPPMGTests, StepCPPMTMGTests:
		return filepath.Join(s.RepoRoot, "cpp")
	case StepLibcugraphETL:
		return filepath.Join(s.RepoRoot, "cpp", "libcugraph_etl")
	case StepPylibcugraph:
		return filepath.Join(s.RepoRoot, "python", "pylibcugraph")
	case StepCugraph:
		return filepath.Join(s.RepoRoot, "python", "cugraph")
	case StepCugraphService:
		return filepath.Join(s.RepoRoot, "python", "cugraph-service")
	case StepDocs:
		return filepath.Join(s.RepoRoot, "docs", "cugraph")
	default:
		return s.RepoRoot
	}
}
