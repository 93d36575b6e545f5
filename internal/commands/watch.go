package commands

import (
	"context"

	"go.uber.org/zap"

	qsync "github.com/ruminaider/quotesync/internal/sync"
)

// Watch runs the periodic pull and push tasks until ctx is cancelled.
func Watch(ctx context.Context, ws *Workspace, notifier qsync.Notifier) error {
	engine := ws.Engine(notifier)
	opts := engine.Options()
	ws.Logger.Info("watching remote",
		zap.String("read_url", ws.Config.Remote.ReadURL),
		zap.Duration("pull_interval", opts.PullInterval),
		zap.Duration("push_interval", opts.PushInterval))
	return engine.Run(ctx)
}
