package pip

import "go.trai.ch/cubuild/internal/core/domain"

// Wheel returns the build-without-install invocation for a Python package
// directory, dropping the wheel into outDir.
func Wheel(pkgDir, outDir string, skbuildArgs string) domain.Invocation {
	argv := []string{
		"python", "-m", "pip", "wheel", "--no-build-isolation", "--no-deps",
		"-w", outDir, pkgDir,
	}

	var env map[string]string
	if skbuildArgs != "" {
		env = map[string]string{"SKBUILD_CMAKE_ARGS": skbuildArgs}
	}

	return domain.Invocation{Argv: argv, Env: env}
}
