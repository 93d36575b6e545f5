package sync

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Handle controls the tasks launched by Engine.Start.
type Handle struct {
	group    errgroup.Group
	stopPull context.CancelFunc
	stopPush context.CancelFunc
}

// StopPull cancels the pull task without waiting for it to exit.
func (h *Handle) StopPull() { h.stopPull() }

// StopPush cancels the push task without waiting for it to exit.
func (h *Handle) StopPush() { h.stopPush() }

// Stop cancels both tasks and waits for them to exit.
func (h *Handle) Stop() {
	h.stopPull()
	h.stopPush()
	_ = h.Wait()
}

// Wait blocks until both tasks have exited.
func (h *Handle) Wait() error {
	return h.group.Wait()
}

// Start launches the pull and push tasks. The pull task pulls immediately and
// then on every pull interval; the push task waits for that first pull to
// finish, pushes, and then pushes on every push interval. Each task finishes
// its cycle before its next tick is considered, so a task never overlaps
// itself. Cancelling ctx stops both.
func (e *Engine) Start(ctx context.Context) *Handle {
	pullCtx, stopPull := context.WithCancel(ctx)
	pushCtx, stopPush := context.WithCancel(ctx)
	h := &Handle{stopPull: stopPull, stopPush: stopPush}

	firstPull := make(chan struct{})
	h.group.Go(func() error {
		e.runPull(pullCtx, firstPull)
		return nil
	})
	h.group.Go(func() error {
		e.runPush(pushCtx, firstPull)
		return nil
	})

	e.logger.Debug("sync started")
	return h
}

// Run starts both tasks and blocks until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	h := e.Start(ctx)
	<-ctx.Done()
	h.Stop()
	e.logger.Debug("sync stopped")
	return nil
}

func (e *Engine) runPull(ctx context.Context, firstDone chan<- struct{}) {
	func() {
		defer close(firstDone)
		if ctx.Err() == nil {
			e.Pull(ctx)
		}
	}()
	every(ctx, e.opts.PullInterval, func() { e.Pull(ctx) })
}

func (e *Engine) runPush(ctx context.Context, firstPull <-chan struct{}) {
	select {
	case <-firstPull:
	case <-ctx.Done():
		return
	}
	if ctx.Err() == nil {
		e.Push(ctx)
	}
	every(ctx, e.opts.PushInterval, func() { e.Push(ctx) })
}

// every calls fn on each tick until ctx is done. Ticks that arrive while fn
// is running are dropped by the ticker.
func every(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			fn()
		}
	}
}
