package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [text] [category]",
	Short: "Add a quote",
	Long:  "Add a quote to the collection. With no arguments an interactive form asks for the text and category.",
	Args:  cobra.MatchAll(cobra.MaximumNArgs(2), func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("expected both text and category, or neither")
		}
		return nil
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text, category string
		if len(args) == 2 {
			text, category = args[0], args[1]
		} else {
			if !isTerminal() {
				return fmt.Errorf("no quote given and stdin is not a terminal")
			}
			var err error
			text, category, err = promptNewQuote()
			if err != nil {
				return err
			}
		}

		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		q, err := commands.Add(ws, text, category)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Added to %s\n", q.Category)
		return nil
	},
}

func promptNewQuote() (string, string, error) {
	var text, category string
	notBlank := func(field string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", field)
			}
			return nil
		}
	}
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Quote").
				Validate(notBlank("text")).
				Value(&text),
			huh.NewInput().
				Title("Category").
				Validate(notBlank("category")).
				Value(&category),
		),
	).Run()
	if err != nil {
		return "", "", err
	}
	return text, category, nil
}
