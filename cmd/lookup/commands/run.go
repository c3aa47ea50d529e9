package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lookup/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [packages...]",
		Short: "Determine the origin of packages and update the lookup document",
		Long: "Determine the origin of the given packages, or of recently changed ones\n" +
			"when none are named, and store changes in 00Meta/lookup.yml.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			checkInconsistent, _ := cmd.Flags().GetBool("check-inconsistent")
			force, _ := cmd.Flags().GetBool("force")
			cacheRequests, _ := cmd.Flags().GetBool("cache-requests")
			dry, _ := cmd.Flags().GetBool("dry")

			return c.app.Run(cmd.Context(), app.RunOptions{
				Options:           c.opts,
				Packages:          args,
				All:               all,
				CheckInconsistent: checkInconsistent,
				Force:             force,
				CacheRequests:     cacheRequests,
				DryRun:            dry,
			})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Check all packages of the primary project")
	cmd.Flags().Bool("check-inconsistent", false, "Also check packages with stale or missing lookup entries")
	cmd.Flags().Bool("force", false, "Re-check packages whose stored origin still matches")
	cmd.Flags().Bool("cache-requests", false, "Cache build service reads for the duration of the run")
	cmd.Flags().BoolP("dry", "n", false, "Log writes and requests instead of performing them")
	return cmd
}
