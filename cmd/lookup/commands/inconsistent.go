package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newInconsistentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inconsistent",
		Short: "List packages whose lookup entry is stale or missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			packages, err := c.app.Inconsistent(cmd.Context(), c.opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range packages {
				_, _ = fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}
