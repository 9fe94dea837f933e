// Package cli implements the demoapi command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:     "demoapi",
	Short:   "PolyRPC demo backend server",
	Version: Version,
	Long: `demoapi serves the PolyRPC demo API: tasks, users, posts, and a
stub prediction endpoint over an in-memory store.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
