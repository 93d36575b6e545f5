package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	dataDirFlag string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "quotesync",
	Short: "Keep a quote collection in sync with a remote endpoint",
	Long: "quotesync shows random quotes from a local collection, lets you add, filter, " +
		"export and import them, and reconciles the collection with a remote HTTP endpoint.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show a quote
		return showCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quotesync %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "dir", "", "Data directory (default $QUOTESYNC_DIR or ~/.quotesync)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Also write log output to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
