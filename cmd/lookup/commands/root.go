// Package commands implements the CLI commands for the lookup maintainer bot.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lookup/internal/app"
	"go.trai.ch/lookup/internal/build"
)

// CLI represents the command line interface for lookup.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Inconsistent(ctx context.Context, opts app.Options) ([]string, error)
	SetDebug(on bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "lookup",
		Short:         "Maintain the origin of every package in a distribution project",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.app.SetDebug(c.opts.Debug)
		},
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

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.opts.ConfigPath, "config", "c", "", "Path to the YAML configuration file")
	flags.StringVarP(&c.opts.APIURL, "apiurl", "A", "", "Build service API URL (default $LOOKUP_APIURL or https://api.opensuse.org)")
	flags.BoolVarP(&c.opts.Debug, "debug", "d", false, "Print debug output")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newInconsistentCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
