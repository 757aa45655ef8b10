// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvs-toolkit/kvstools"
	"github.com/kvs-toolkit/kvstools/pkg/example"
)

func newListCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List enabled features and example directories",
		Long:  `List the enabled KVS_SUPPORT_* features and the example directories that would be built, without running anything.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := kvstools.Discover(o.config, o.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Platform: %s/%s\n\n", plan.Platform.OS, plan.Platform.Arch)

			fmt.Fprintf(out, "Enabled features:\n")
			for _, f := range plan.Features {
				fmt.Fprintf(out, "  %s\n", f)
			}

			fmt.Fprintf(out, "\nExample directories:\n")
			for _, d := range plan.Dirs {
				marker := " "
				if example.IsQt(d) {
					marker = "*"
				}
				fmt.Fprintf(out, "  %s %s\n", marker, d)
			}

			fmt.Fprintf(out, "\n* = Qt project\n")
			return nil
		},
	}
}
