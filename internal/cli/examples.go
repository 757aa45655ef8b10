// internal/cli/examples.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvs-toolkit/kvstools"
	"github.com/kvs-toolkit/kvstools/pkg/core"
	"github.com/kvs-toolkit/kvstools/pkg/example"
)

// NewExamplesCommand builds the kvsexamples root command. runner replaces
// the subprocess runner when not nil.
func NewExamplesCommand(runner example.Runner) *cobra.Command {
	o := &options{}
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "kvsexamples [build|debug|clean|distclean|rebuild]",
		Short: "Build the KVS examples",
		Long: `kvsexamples - KVS example builder

Finds every directory below the example root that contains C++ sources and
runs the requested action there with kvsmake and make (nmake on Windows).
Directories under Support* are only built when the matching KVS_SUPPORT_*
flag is enabled in kvs.conf. Failing directories do not stop the run.

Examples:
  kvsexamples
  kvsexamples rebuild
  kvsexamples clean --dry-run
  kvsexamples list`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.initConfig(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := ""
			if len(args) == 1 {
				action = args[0]
			}

			_, err := kvstools.BuildExamples(cmd.Context(), o.config, &kvstools.BuildOptions{
				Action: action,
				DryRun: dryRun,
				Runner: runner,
				Out:    cmd.OutOrStdout(),
				Logger: o.logger,
			})
			if errors.Is(err, core.ErrUnknownAction) {
				fmt.Fprintln(cmd.OutOrStdout(), example.Usage(cmd.Root().Name()))
			}
			return err
		},
	}

	o.addGlobalFlags(cmd)
	o.stringOverride(cmd, "conf", "KVS configuration file (default ../kvs.conf)", func(cfg *core.Config, v string) {
		cfg.ConfFile = v
	})
	o.stringOverride(cmd, "dir", "example root directory (default .)", func(cfg *core.Config, v string) {
		cfg.ExampleDir = v
	})
	o.stringOverride(cmd, "os", "target operating system (default: host)", func(cfg *core.Config, v string) {
		cfg.OS = v
	})
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the build steps without running them")

	cmd.AddCommand(newListCommand(o))
	cmd.AddCommand(newConfigCommand(o))
	cmd.AddCommand(newVersionCommand())

	return cmd
}
