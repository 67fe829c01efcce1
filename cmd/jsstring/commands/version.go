package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/jsstring/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		// The version does not depend on the configuration.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "jsstring version %s\n", build.Version)
		},
	}
}
