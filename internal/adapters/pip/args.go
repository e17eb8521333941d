// Package pip assembles pip command lines for the Python package steps.
package pip

import "go.trai.ch/cubuild/internal/core/domain"

// Install returns the install invocation for a Python package directory.
// The cmake cache entries travel through SKBUILD_CMAKE_ARGS so the package's
// scikit-build backend configures the native extension the same way the
// standalone cmake steps do.
func Install(pkgDir string, editable bool, skbuildArgs string) domain.Invocation {
	argv := []string{"python", "-m", "pip", "install", "--no-build-isolation", "--no-deps"}
	if editable {
		argv = append(argv, "-e")
	}
	argv = append(argv, pkgDir)

	var env map[string]string
	if skbuildArgs != "" {
		env = map[string]string{"SKBUILD_CMAKE_ARGS": skbuildArgs}
	}

	return domain.Invocation{Argv: argv, Env: env}
}

// Uninstall returns the uninstall invocation for the given packages.
func Uninstall(pkgs ...string) domain.Invocation {
	argv := []string{"python", "-m", "pip", "uninstall", "-y"}
	argv = append(argv, pkgs...)
	return domain.Invocation{Argv: argv}
}
