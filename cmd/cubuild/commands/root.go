// Package commands implements the CLI commands for the cubuild tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cubuild/internal/app"
	"go.trai.ch/cubuild/internal/build"
	"go.trai.ch/cubuild/internal/core/domain"
	"go.trai.ch/cubuild/internal/ui/style"
)

// flagOptions maps each boolean flag to the configuration option it enables.
// Every option is idempotent and commutative, so flag order never matters.
var flagOptions = []struct {
	name   string
	short  string
	usage  string
	option domain.Option
}{
	{"verbose", "v", "Enable verbose toolchain output", domain.WithVerbose()},
	{"debug", "g", "Build with debug symbols (Debug build type)", domain.WithDebug()},
	{"no-install", "n", "Build without installing the results", domain.WithoutInstall()},
	{"pydevelop", "", "Install Python packages in editable mode", domain.WithEditableInstall()},
	{"allgpuarch", "", "Compile for all supported GPU architectures", domain.WithAllGPUArchs()},
	{"skip-cpp-tests", "", "Skip building the C++ test binaries", domain.WithoutCPPTests()},
	{"without-cugraphops", "", "Build without the cugraph-ops dependency", domain.WithoutCugraphOps()},
	{"cpp-mgtests", "", "Build the multi-process C++ test binaries", domain.WithMGTests()},
	{"cpp-mtmgtests", "", "Build the multi-thread multi-GPU C++ test binaries", domain.WithMTMGTests()},
	{"no-ninja", "", "Use the system make generator instead of ninja", domain.WithMakeGenerator()},
	{"scoped-clean", "", "Restrict clean to the named steps' build dirs", domain.WithScopedClean()},
}

// CLI represents the command line interface for cubuild.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "cubuild [targets...]",
		Short:         "Build orchestrator for the cugraph repository",
		Long: "cubuild configures, builds, and installs the native libraries and\n" +
			"Python packages of a cugraph checkout. Without targets it runs the\n" +
			"default sequence; \"all\" selects every build step, and \"clean\" and\n" +
			"\"uninstall\" always run before any build.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}

	for _, f := range flagOptions {
		rootCmd.Flags().BoolP(f.name, f.short, false, f.usage)
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	var opts []domain.Option
	for _, f := range flagOptions {
		if on, _ := cmd.Flags().GetBool(f.name); on {
			opts = append(opts, f.option)
		}
	}

	results, err := c.app.Run(cmd.Context(), ".", args, opts)
	if len(results) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), style.Summary(results))
	}
	return err
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
