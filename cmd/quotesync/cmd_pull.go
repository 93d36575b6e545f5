package main

import (
	"fmt"

	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/spf13/cobra"
)

var (
	pullDryRun bool
	pullQuiet  bool
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch quotes from the remote and merge them in",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		var result *commands.PullResult
		if pullDryRun {
			result, err = commands.PullDryRun(cmd.Context(), ws)
		} else {
			result, err = commands.Pull(cmd.Context(), ws, nil)
		}
		if err != nil {
			return err
		}
		if !pullQuiet {
			printPullResult(result)
		}
		return nil
	},
}

func printPullResult(result *commands.PullResult) {
	verb := "Added"
	if result.DryRun {
		verb = "Would add"
	}
	fmt.Printf("Fetched %d record(s) from the remote\n", result.Fetched)
	if len(result.Added) == 0 {
		fmt.Println("Already up to date.")
	} else {
		fmt.Printf("✓ %s %d quote(s):\n", verb, len(result.Added))
		for _, q := range result.Added {
			fmt.Printf("  + %s\n", q.Text)
		}
	}
	if result.Skipped > 0 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("  %d already present", result.Skipped)))
	}
}

func init() {
	pullCmd.Flags().BoolVar(&pullDryRun, "dry-run", false, "Show what would be added without changing anything")
	pullCmd.Flags().BoolVarP(&pullQuiet, "quiet", "q", false, "Suppress output")
}
