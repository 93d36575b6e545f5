package main

import (
	"fmt"

	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Send the whole collection to the remote",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		n, err := commands.Push(cmd.Context(), ws)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Pushed %d quote(s)\n", n)
		return nil
	},
}
