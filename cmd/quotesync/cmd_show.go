package main

import (
	"fmt"

	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/spf13/cobra"
)

var showCategory string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a random quote from the current filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		printShowResult(commands.Show(ws, showCategory))
		return nil
	},
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the last quote shown again",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		printShowResult(commands.Last(ws))
		return nil
	},
}

func printShowResult(result commands.ShowResult) {
	if !result.Found {
		fmt.Println("No quotes available.")
		return
	}
	fmt.Println(renderQuote(result.Quote))
}

func init() {
	showCmd.Flags().StringVarP(&showCategory, "category", "c", "", "Pick from this category instead of the saved filter")
}
