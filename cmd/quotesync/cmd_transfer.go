package main

import (
	"fmt"

	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the collection to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		path, n, err := commands.Export(ws, exportOutput)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Exported %d quote(s) to %s\n", n, path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Append every quote in a JSON file",
	Long:  "Append every quote in a JSON file produced by 'quotesync export'. If any entry is malformed nothing is imported.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		n, err := commands.Import(ws, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("✓ Imported %d quote(s)\n", n)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default quotes.json)")
}
