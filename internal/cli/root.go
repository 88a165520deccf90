package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput  bool
	layoutPath  string
	profilePath string

	headingColor = color.New(color.FgCyan, color.Bold)
)

// rootCmd is the root command for shopwalk.
var rootCmd = &cobra.Command{
	Use:     "shopwalk",
	Version: "dev",
	Short:   "Plan a walk through the store for a shopping list",
	Long: `shopwalk resolves a shopping list against the store layout and prints the
corridors to visit, the end to enter each one from, and the items to pick up.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&layoutPath, "layout", "", "Layout JSON file (default $LAYOUT_PATH or data/merged_articles.json)")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Store profile YAML file (default $PROFILE_PATH or built-in)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the shopwalk CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(randomCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
