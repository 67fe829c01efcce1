// Package commands implements the CLI commands for jsstring.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/jsstring/internal/app"
	"go.trai.ch/jsstring/internal/build"
)

// CLI represents the command line interface for jsstring.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.ConfigureOptions) error
	Inspect(arg string) (*app.Inspection, error)
	ToNumber(arg string) (string, error)
	Concat(args []string) (*app.Inspection, error)
	IndexOf(haystack, needle string, from int) (int, bool, error)
	Trim(arg string, mode app.TrimMode) (string, error)
	WellKnown() []app.WellKnownEntry
	Batch(ctx context.Context, inputs []string, opts app.BatchOptions) (*app.BatchResult, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "jsstring",
		Short:         "Inspect strings the way a JavaScript engine stores them",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (default jsstring.yaml)")
	rootCmd.PersistentFlags().Bool("json", false, "Write results as JSON")
	rootCmd.PersistentFlags().BoolP("escapes", "e", false, `Expand \uXXXX escapes in string arguments`)

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("config")
		escapes, _ := cmd.Flags().GetBool("escapes")
		return c.app.Configure(app.ConfigureOptions{
			Path:    path,
			Escapes: escapes,
		})
	}

	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newNumberCmd())
	rootCmd.AddCommand(c.newConcatCmd())
	rootCmd.AddCommand(c.newIndexCmd())
	rootCmd.AddCommand(c.newTrimCmd())
	rootCmd.AddCommand(c.newWellKnownCmd())
	rootCmd.AddCommand(c.newBatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetOutput sets the output and error writers for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) printer(cmd *cobra.Command) *printer {
	asJSON, _ := cmd.Flags().GetBool("json")
	return newPrinter(cmd.OutOrStdout(), asJSON)
}
