package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.trai.ch/jsstring/internal/app"
)

func (c *CLI) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [inputs...]",
		Short: "Analyze every line of the given files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			noCache, _ := cmd.Flags().GetBool("no-cache")
			workers, _ := cmd.Flags().GetInt("workers")
			encoding, _ := cmd.Flags().GetString("encoding")

			result, err := c.app.Batch(cmd.Context(), args, app.BatchOptions{
				NoCache:  noCache,
				Workers:  workers,
				Encoding: encoding,
			})
			if result != nil {
				if printErr := c.printer(cmd).batch(result); printErr != nil {
					return errors.Join(err, printErr)
				}
			}
			return err
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Ignore stored reports and analyze every file")
	cmd.Flags().IntP("workers", "w", 0, "Lines analyzed in parallel (default from configuration)")
	cmd.Flags().String("encoding", "", "Input encoding: utf-8, utf-16le or utf-16be (default from configuration)")
	return cmd
}
