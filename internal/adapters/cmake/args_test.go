package cmake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cubuild/internal/adapters/cmake"
	"go.trai.ch/cubuild/internal/core/domain"
)

func testSettings() domain.Settings {
	return domain.Settings{
		RepoRoot:      "/repo",
		InstallPrefix: "/opt/conda",
		ParallelLevel: 8,
	}
}

func TestConfigure_Defaults(t *testing.T) {
	inv := cmake.Configure(domain.StepLibcugraph, domain.NewConfig(), testSettings())

	assert.Equal(t, []string{
		"cmake",
		"-S", "/repo/cpp",
		"-B", "/repo/cpp/build",
		"-G", "Ninja",
		"-DCMAKE_INSTALL_PREFIX=/opt/conda",
		"-DCMAKE_BUILD_TYPE=Release",
		"-DCMAKE_CUDA_ARCHITECTURES=NATIVE",
		"-DBUILD_TESTS=ON",
		"-DUSE_CUGRAPH_OPS=ON",
		"-DBUILD_CUGRAPH_MG_TESTS=OFF",
		"-DBUILD_CUGRAPH_MTMG_TESTS=OFF",
	}, inv.Argv)
}

func TestConfigure_FlagsFlipDefinitions(t *testing.T) {
	cfg := domain.NewConfig(
		domain.WithDebug(),
		domain.WithAllGPUArchs(),
		domain.WithoutCPPTests(),
		domain.WithoutCugraphOps(),
		domain.WithMakeGenerator(),
	)

	inv := cmake.Configure(domain.StepLibcugraph, cfg, testSettings())

	assert.Contains(t, inv.Argv, "Unix Makefiles")
	assert.Contains(t, inv.Argv, "-DCMAKE_BUILD_TYPE=Debug")
	assert.Contains(t, inv.Argv, "-DCMAKE_CUDA_ARCHITECTURES=ALL")
	assert.Contains(t, inv.Argv, "-DBUILD_TESTS=OFF")
	assert.Contains(t, inv.Argv, "-DUSE_CUGRAPH_OPS=OFF")
}

func TestConfigure_ETLHasNoCoreOnlyToggles(t *testing.T) {
	inv := cmake.Configure(domain.StepLibcugraphETL, domain.NewConfig(), testSettings())

	assert.Equal(t, "/repo/cpp/libcugraph_etl", inv.Argv[2])
	assert.NotContains(t, inv.Argv, "-DUSE_CUGRAPH_OPS=ON")
	assert.NotContains(t, inv.Argv, "-DBUILD_CUGRAPH_MG_TESTS=OFF")
}

func TestConfigure_ExtraArgsAppended(t *testing.T) {
	st := testSettings()
	st.ExtraCMakeArgs = []string{"-DCMAKE_CXX_COMPILER=g++-12"}
	st.StepExtraArgs = map[domain.StepName][]string{
		domain.StepLibcugraph: {"-DFETCH_RAPIDS=OFF"},
	}

	inv := cmake.Configure(domain.StepLibcugraph, domain.NewConfig(), st)

	n := len(inv.Argv)
	assert.Equal(t, "-DCMAKE_CXX_COMPILER=g++-12", inv.Argv[n-2])
	assert.Equal(t, "-DFETCH_RAPIDS=OFF", inv.Argv[n-1])
}

func TestBuild(t *testing.T) {
	inv := cmake.Build("/repo/cpp/build", domain.NewConfig(), 16)
	assert.Equal(t, []string{"cmake", "--build", "/repo/cpp/build", "-j16"}, inv.Argv)

	verbose := cmake.Build("/repo/cpp/build", domain.NewConfig(domain.WithVerbose()), 4, "cugraph_mg_tests")
	assert.Equal(t, []string{
		"cmake", "--build", "/repo/cpp/build", "-j4", "--target", "cugraph_mg_tests", "-v",
	}, verbose.Argv)
}

func TestInstall(t *testing.T) {
	inv := cmake.Install("/repo/cpp/build")
	assert.Equal(t, []string{"cmake", "--install", "/repo/cpp/build"}, inv.Argv)
}

func TestPassThrough_SemicolonSeparated(t *testing.T) {
	st := testSettings()
	st.ExtraCMakeArgs = []string{"-DFOO=1", "-DBAR=2"}

	got := cmake.PassThrough(domain.StepPylibcugraph, domain.NewConfig(), st)

	assert.Equal(t,
		"-DCMAKE_INSTALL_PREFIX=/opt/conda;-DCMAKE_BUILD_TYPE=Release;-DCMAKE_CUDA_ARCHITECTURES=NATIVE;-DBUILD_TESTS=ON;-DFOO=1;-DBAR=2",
		got)
}
