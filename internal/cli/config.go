// internal/cli/config.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvs-toolkit/kvstools/pkg/core"
)

func newConfigCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config [path]",
		Short: "Write the effective configuration to a file",
		Long: `Write the effective configuration (defaults, config file and flags) to
path, ./kvstools.yaml by default. A path ending in .toml is written as TOML.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := core.DefaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := core.SaveConfig(o.config, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}
