// internal/cli/header.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvs-toolkit/kvstools"
	"github.com/kvs-toolkit/kvstools/pkg/core"
)

// NewHeaderCommand builds the kvsheader root command
func NewHeaderCommand() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "kvsheader <source-module> <destination-directory>",
		Short: "Generate KVS forwarding headers",
		Long: `kvsheader - KVS forwarding header generator

Reads <source-dir>/<source-module>/KVS_HEADER_LIST and writes one forwarding
header per entry into <source-dir>/<destination-directory>, plus the umbrella
header <source-dir>/kvs<source-module>.

Any other number of arguments does nothing.

Examples:
  kvsheader Core kvs
  kvsheader SupportGLUT kvs/glut --source-dir=../Source`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return nil
			}
			return o.initConfig(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeader(o, args)
		},
	}

	o.addGlobalFlags(cmd)
	o.stringOverride(cmd, "source-dir", "KVS source directory (default ../Source)", func(cfg *core.Config, v string) {
		cfg.SourceDir = v
	})

	return cmd
}

func runHeader(o *options, args []string) error {
	if len(args) != 2 {
		return nil
	}
	module, dest := args[0], args[1]

	if _, err := kvstools.GenerateHeaders(o.config, module, dest, o.logger); err != nil {
		return fmt.Errorf("generating headers for %s: %w", module, err)
	}
	return nil
}
