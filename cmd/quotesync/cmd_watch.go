package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/ruminaider/quotesync/internal/quote"
	qsync "github.com/ruminaider/quotesync/internal/sync"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep pulling from and pushing to the remote until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, closeWS, err := openWorkspace()
		if err != nil {
			return err
		}
		defer closeWS()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Watching %s (pull every %s, push every %s). Press Ctrl+C to stop.\n",
			ws.Config.Remote.ReadURL, ws.Config.Sync.PullInterval, ws.Config.Sync.PushInterval)

		notifier := qsync.NotifierFunc(func(added []quote.Quote) {
			fmt.Println(renderNotification(added))
		})
		if err := commands.Watch(ctx, ws, notifier); err != nil {
			return err
		}
		fmt.Println("Stopped.")
		return nil
	},
}
