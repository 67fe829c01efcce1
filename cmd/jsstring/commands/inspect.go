package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jsstring/internal/app"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <string>",
		Short: "Show how a string is stored and what it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.app.Inspect(args[0])
			if err != nil {
				return err
			}
			return c.printer(cmd).inspection(in)
		},
	}
}

func (c *CLI) newNumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "number <string>",
		Short: "Convert a string to a number with the JavaScript rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.ToNumber(args[0])
			if err != nil {
				return err
			}
			return c.printer(cmd).text("number", n)
		},
	}
}

func (c *CLI) newConcatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concat <string>...",
		Short: "Concatenate strings and inspect the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.app.Concat(args)
			if err != nil {
				return err
			}
			return c.printer(cmd).inspection(in)
		},
	}
}

func (c *CLI) newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <haystack> <needle>",
		Short: "Find the first UTF-16 position of needle in haystack",
		Long:  "Find the first UTF-16 position of needle in haystack. Prints -1 when there is no match.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetInt("from")
			pos, found, err := c.app.IndexOf(args[0], args[1], from)
			if err != nil {
				return err
			}
			return c.printer(cmd).index(pos, found)
		},
	}
	cmd.Flags().Int("from", 0, "Position to start searching at")
	return cmd
}

func (c *CLI) newTrimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trim <string>",
		Short: "Strip JavaScript whitespace and line terminators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetBool("start")
			end, _ := cmd.Flags().GetBool("end")

			mode := app.TrimBoth
			switch {
			case start && !end:
				mode = app.TrimStart
			case end && !start:
				mode = app.TrimEnd
			}

			out, err := c.app.Trim(args[0], mode)
			if err != nil {
				return err
			}
			return c.printer(cmd).text("trimmed", out)
		},
	}
	cmd.Flags().Bool("start", false, "Only strip leading whitespace")
	cmd.Flags().Bool("end", false, "Only strip trailing whitespace")
	return cmd
}

func (c *CLI) newWellKnownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wellknown",
		Short: "List the well-known string table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printer(cmd).wellKnown(c.app.WellKnown())
		},
	}
}
