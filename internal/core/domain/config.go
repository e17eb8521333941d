package domain

// BuildType selects the native build variant.
type BuildType string

const (
	// BuildTypeRelease is the optimized default.
	BuildTypeRelease BuildType = "Release"
	// BuildTypeDebug builds with debug info and no optimization.
	BuildTypeDebug BuildType = "Debug"
)

// GPUArchPolicy selects which GPU architectures the native libraries target.
type GPUArchPolicy string

const (
	// GPUArchNative compiles only for the GPUs present on the build host.
	GPUArchNative GPUArchPolicy = "NATIVE"
	// GPUArchAll compiles for every supported architecture.
	GPUArchAll GPUArchPolicy = "ALL"
)

// Generator selects the cmake build-system generator.
type Generator string

const (
	// GeneratorNinja is the preferred generator.
	GeneratorNinja Generator = "Ninja"
	// GeneratorMake is the system fallback.
	GeneratorMake Generator = "Unix Makefiles"
)

// BuildConfig is the resolved configuration record consumed by every build
// action. It is produced once by NewConfig before the first action runs and
// never mutated afterwards.
type BuildConfig struct {
	Verbose        bool
	BuildType      BuildType
	Install        bool
	PythonEditable bool
	GPUArchs       GPUArchPolicy
	BuildTests     bool
	UseCugraphOps  bool
	BuildMGTests   bool
	BuildMTMGTests bool
	Generator      Generator
	CleanScoped    bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() BuildConfig {
	return BuildConfig{
		BuildType:     BuildTypeRelease,
		Install:       true,
		GPUArchs:      GPUArchNative,
		BuildTests:    true,
		UseCugraphOps: true,
		Generator:     GeneratorNinja,
	}
}

// Option is a single flag's contribution to the configuration. Options are
// idempotent and commutative, so the result is independent of flag order.
type Option func(*BuildConfig)

// NewConfig folds the given options over the defaults.
func NewConfig(opts ...Option) BuildConfig {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithVerbose enables verbose toolchain output.
func WithVerbose() Option { return func(c *BuildConfig) { c.Verbose = true } }

// WithDebug switches the native build type to Debug.
func WithDebug() Option { return func(c *BuildConfig) { c.BuildType = BuildTypeDebug } }

// WithoutInstall skips the install phase after building.
func WithoutInstall() Option { return func(c *BuildConfig) { c.Install = false } }

// WithEditableInstall installs Python packages in editable (develop) mode.
func WithEditableInstall() Option { return func(c *BuildConfig) { c.PythonEditable = true } }

// WithAllGPUArchs compiles for all supported GPU architectures instead of
// only the ones present on the build host.
func WithAllGPUArchs() Option { return func(c *BuildConfig) { c.GPUArchs = GPUArchAll } }

// WithoutCPPTests disables building the C++ test binaries.
func WithoutCPPTests() Option { return func(c *BuildConfig) { c.BuildTests = false } }

// WithoutCugraphOps builds without the optional cugraph-ops dependency.
func WithoutCugraphOps() Option { return func(c *BuildConfig) { c.UseCugraphOps = false } }

// WithMGTests enables the multi-process test binaries and their build step.
func WithMGTests() Option { return func(c *BuildConfig) { c.BuildMGTests = true } }

// WithMTMGTests enables the multi-thread multi-GPU test binaries and their
// build step.
func WithMTMGTests() Option { return func(c *BuildConfig) { c.BuildMTMGTests = true } }

// WithMakeGenerator uses the system make generator instead of ninja.
func WithMakeGenerator() Option { return func(c *BuildConfig) { c.Generator = GeneratorMake } }

// WithScopedClean restricts the clean pseudo-target to the build dirs of the
// explicitly named steps instead of every known dir.
func WithScopedClean() Option { return func(c *BuildConfig) { c.CleanScoped = true } }
