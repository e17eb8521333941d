package domain

// Invocation is one external toolchain call, assembled by a typed argument
// builder rather than interpolated strings.
type Invocation struct {
	// Argv is the full command line; Argv[0] is the executable.
	Argv []string
	// Dir is the working directory; empty means the orchestrator's cwd.
	Dir string
	// Env holds extra environment variables layered over the process
	// environment, such as the skbuild pass-through for pip builds.
	Env map[string]string
}
