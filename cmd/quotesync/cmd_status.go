package main

import (
	"fmt"
	"strings"

	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the local collection and remote settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		result := commands.Status(ws)
		fmt.Printf("Data dir:   %s (%s store)\n", result.DataDir, result.Store)
		fmt.Printf("Quotes:     %d\n", result.Quotes)
		fmt.Printf("Categories: %s\n", strings.Join(result.Categories, ", "))
		fmt.Printf("Filter:     %s\n", result.Filter)
		fmt.Printf("Pull from:  %s\n", result.ReadURL)
		fmt.Printf("Push to:    %s\n", result.WriteURL)
		if result.LastQuote != nil {
			fmt.Println()
			fmt.Println(dimStyle.Render("Last shown:"))
			fmt.Println(renderQuote(*result.LastQuote))
		}
		return nil
	},
}
