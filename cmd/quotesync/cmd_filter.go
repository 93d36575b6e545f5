package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/ruminaider/quotesync/internal/quote"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		state := commands.Filter(ws)
		fmt.Print(renderCategories(state.Categories, state.Current))
		return nil
	},
}

var filterPrint bool

var filterCmd = &cobra.Command{
	Use:   "filter [category]",
	Short: "Show or set the category filter",
	Long: "Set the category filter used by 'quotesync show'. Use \"all\" to clear it. " +
		"With no argument, prompts for a category on a terminal and prints the current filter otherwise.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		state := commands.Filter(ws)
		var value string
		switch {
		case len(args) == 1:
			value = args[0]
		case filterPrint || !isTerminal():
			fmt.Println(state.Current)
			return nil
		default:
			value, err = promptFilter(state)
			if err != nil {
				return err
			}
		}

		if err := commands.SetFilter(ws, value); err != nil {
			return err
		}
		fmt.Printf("✓ Filter set to %s\n", value)
		return nil
	},
}

func promptFilter(state commands.FilterState) (string, error) {
	value := state.Current
	options := []huh.Option[string]{huh.NewOption("All categories", quote.FilterAll)}
	for _, c := range state.Categories {
		options = append(options, huh.NewOption(c, c))
	}
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Show quotes from:").
				Options(options...).
				Value(&value),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return value, nil
}

func init() {
	filterCmd.Flags().BoolVar(&filterPrint, "print", false, "Print the current filter instead of prompting")
}
