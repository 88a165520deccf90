package cli

import (
	"shopping-path-service/internal/api/dto"

	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize ITEM...",
	Short: "Plan the walk for the given items",
	Long: `Resolve each item against the store layout and print the corridors in
visiting order. Items that cannot be located are listed at the end.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := newOptimizer(cmd.Context())
		if err != nil {
			return err
		}

		path := opt.Optimize(args)

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), dto.FromPath(path))
		}
		return printPath(cmd.OutOrStdout(), path, nil)
	},
}
