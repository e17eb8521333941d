package app

import (
	"path/filepath"

	"go.trai.ch/cubuild/internal/adapters/cmake"
	"go.trai.ch/cubuild/internal/adapters/pip"
	"go.trai.ch/cubuild/internal/core/domain"
)

// pythonPackages lists what the uninstall step removes from the active
// environment, dependents first.
var pythonPackages = []string{
	"cugraph-service-server",
	"cugraph-service-client",
	"cugraph",
	"pylibcugraph",
}

// cmakeTestTargets maps the test-binary steps to their cmake targets.
var cmakeTestTargets = map[domain.StepName]string{
	domain.StepCPPMGTests:   "cugraph_mg_tests",
	domain.StepCPPMTMGTests: "cugraph_mtmg_tests",
}

// materialize turns the selected step names into the full plan: every step
// carries its invocations, clean dirs, and manifests before the first
// action runs.
func materialize(targets domain.Targets, cfg domain.BuildConfig, st domain.Settings) *domain.Plan {
	names := domain.SelectSteps(targets, cfg)

	// Naming a test step positionally is equivalent to passing its flag:
	// the core configure must carry the matching toggle either way.
	for _, name := range names {
		switch name {
		case domain.StepCPPMGTests:
			cfg.BuildMGTests = true
		case domain.StepCPPMTMGTests:
			cfg.BuildMTMGTests = true
		}
	}

	plan := &domain.Plan{Steps: make([]domain.Step, 0, len(names))}
	for _, name := range names {
		plan.Steps = append(plan.Steps, materializeStep(name, targets, cfg, st))
	}
	return plan
}

func materializeStep(name domain.StepName, targets domain.Targets, cfg domain.BuildConfig, st domain.Settings) domain.Step {
	switch name {
	case domain.StepClean:
		return domain.Step{
			Name:      name,
			Action:    domain.ActionClean,
			CleanDirs: cleanDirs(targets, cfg, st),
		}

	case domain.StepUninstall:
		return domain.Step{
			Name:   name,
			Action: domain.ActionUninstall,
			Manifests: []string{
				filepath.Join(st.BuildDir(domain.StepLibcugraph), "install_manifest.txt"),
				filepath.Join(st.BuildDir(domain.StepLibcugraphETL), "install_manifest.txt"),
			},
			Invocations: []domain.Invocation{pip.Uninstall(pythonPackages...)},
		}

	case domain.StepLibcugraph, domain.StepLibcugraphETL:
		return cmakeStep(name, cfg, st)

	case domain.StepCPPMGTests, domain.StepCPPMTMGTests:
		return cmakeTestStep(name, cfg, st)

	case domain.StepCugraphService:
		// The service ships as two packages rooted under one source dir.
		root := st.SourceDir(name)
		return domain.Step{
			Name:   name,
			Action: domain.ActionBuild,
			Invocations: []domain.Invocation{
				pythonInvocation(name, filepath.Join(root, "client"), cfg, st),
				pythonInvocation(name, filepath.Join(root, "server"), cfg, st),
			},
		}

	case domain.StepDocs:
		docsSrc := filepath.Join(st.SourceDir(name), "source")
		docsOut := filepath.Join(st.BuildDir(name), "html")
		return domain.Step{
			Name:   name,
			Action: domain.ActionBuild,
			Invocations: []domain.Invocation{
				cmake.Build(st.BuildDir(domain.StepLibcugraph), cfg, st.ParallelLevel, "docs_cugraph"),
				{Argv: []string{"sphinx-build", "-b", "html", docsSrc, docsOut}},
			},
		}

	default: // pylibcugraph, cugraph
		return domain.Step{
			Name:   name,
			Action: domain.ActionBuild,
			Invocations: []domain.Invocation{
				pythonInvocation(name, st.SourceDir(name), cfg, st),
			},
		}
	}
}

func cmakeStep(name domain.StepName, cfg domain.BuildConfig, st domain.Settings) domain.Step {
	dir := st.BuildDir(name)
	configure := cmake.Configure(name, cfg, st)

	invocations := []domain.Invocation{
		configure,
		cmake.Build(dir, cfg, st.ParallelLevel),
	}
	if cfg.Install {
		invocations = append(invocations, cmake.Install(dir))
	}

	return domain.Step{
		Name:        name,
		Action:      domain.ActionBuild,
		Invocations: invocations,
		Stamp:       stampFor(dir, configure),
	}
}

// cmakeTestStep builds the test binaries inside the core build dir. The
// configure is repeated with the test toggle on; cmake makes that a no-op
// when the core step already ran in the same invocation.
func cmakeTestStep(name domain.StepName, cfg domain.BuildConfig, st domain.Settings) domain.Step {
	dir := st.BuildDir(domain.StepLibcugraph)
	configure := cmake.Configure(domain.StepLibcugraph, cfg, st)

	return domain.Step{
		Name:   name,
		Action: domain.ActionBuild,
		Invocations: []domain.Invocation{
			configure,
			cmake.Build(dir, cfg, st.ParallelLevel, cmakeTestTargets[name]),
		},
		Stamp: stampFor(dir, configure),
	}
}

func pythonInvocation(step domain.StepName, pkgDir string, cfg domain.BuildConfig, st domain.Settings) domain.Invocation {
	passThrough := cmake.PassThrough(step, cfg, st)
	if !cfg.Install {
		return pip.Wheel(pkgDir, st.BuildDir(step), passThrough)
	}
	return pip.Install(pkgDir, cfg.PythonEditable, passThrough)
}

func stampFor(dir string, configure domain.Invocation) *domain.Stamp {
	return &domain.Stamp{
		Argv: configure.Argv,
		CachePaths: []string{
			filepath.Join(dir, "CMakeCache.txt"),
			filepath.Join(dir, "CMakeFiles"),
		},
	}
}

// cleanDirs enumerates the directories the clean step removes. With
// --scoped-clean and explicitly named steps, only those steps' dirs are
// cleaned; otherwise every known build dir is.
func cleanDirs(targets domain.Targets, cfg domain.BuildConfig, st domain.Settings) []string {
	steps := domain.BuildStepNames()
	if cfg.CleanScoped && len(targets.Steps) > 0 {
		steps = targets.Steps
	}

	seen := make(map[string]bool, len(steps))
	dirs := make([]string, 0, len(steps))
	for _, step := range steps {
		dir := st.BuildDir(step)
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}
