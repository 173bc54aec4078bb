package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kpob/nctl/cmd/view"
	"github.com/kpob/nctl/pkg/api"
	"github.com/kpob/nctl/pkg/log"
)

var (
	assetsRoot string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "nctl",
	Short: "Control-plane utilities for local test networks",
	Long: `nctl inspects local test networks of nodes.

Commands select their target with trailing net=<N> and node=<N> arguments;
both default to 1. Per-network settings are read from the vars file under
the assets directory (assets/net-<N>/vars).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		api.AssetsRoot = resolveAssetsRoot(assetsRoot)
		if verbose {
			api.Logger = log.NewDevelopment()
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveAssetsRoot prefers the --assets flag, then NCTL_ASSETS, then the
// assets directory under the toolkit home NCTL.
func resolveAssetsRoot(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if root := os.Getenv("NCTL_ASSETS"); root != "" {
		return root
	}
	if home := os.Getenv("NCTL"); home != "" {
		return filepath.Join(home, "assets")
	}
	return "assets"
}

func init() {
	rootCmd.PersistentFlags().StringVar(&assetsRoot, "assets", "", "Assets directory (default: $NCTL_ASSETS, then $NCTL/assets)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log request diagnostics to stderr")

	rootCmd.AddCommand(view.ViewCmd)
}
