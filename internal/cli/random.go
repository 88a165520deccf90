package cli

import (
	"math/rand/v2"
	"shopping-path-service/internal/api/dto"

	"github.com/spf13/cobra"
)

var (
	randomCount int
	randomSeed  uint64
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Plan the walk for a random shopping list",
	Long: `Sample distinct products from the layout, then print the list followed by
its optimized path. Use --seed to get the same list again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := newOptimizer(cmd.Context())
		if err != nil {
			return err
		}

		var rng *rand.Rand
		if randomSeed != 0 {
			rng = rand.New(rand.NewPCG(randomSeed, randomSeed))
		}

		list := opt.Index().RandomSample(randomCount, rng)
		path := opt.Optimize(list)

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), struct {
				Items []string         `json:"items"`
				Path  dto.PathResponse `json:"path"`
			}{Items: list, Path: dto.FromPath(path)})
		}
		return printPath(cmd.OutOrStdout(), path, list)
	},
}

func init() {
	randomCmd.Flags().IntVar(&randomCount, "count", 20, "Number of products to sample")
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "Seed for a reproducible list (0 picks a random one)")
}
