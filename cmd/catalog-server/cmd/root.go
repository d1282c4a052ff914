// Package cmd implements the CLI commands for catalog-server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "catalog-server",
	Short: "Serve a storefront product catalog from a JSON fixture",
	Long:  "A development server implementing the product listing, brand and category endpoints consumed by spd, backed by a JSON product fixture.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
