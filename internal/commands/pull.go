package commands

import (
	"context"

	"github.com/ruminaider/quotesync/internal/quote"
	qsync "github.com/ruminaider/quotesync/internal/sync"
)

type PullResult struct {
	Fetched int
	Added   []quote.Quote
	Skipped int // fetched quotes dropped because their text already exists
	DryRun  bool
}

// PullDryRun fetches one page and reports what a pull would add without
// touching the collection.
func PullDryRun(ctx context.Context, ws *Workspace) (*PullResult, error) {
	incoming, fetched, err := ws.Engine(nil).Fetch(ctx)
	if err != nil {
		return nil, err
	}
	preview := ws.Repo.PreviewMerge(incoming)
	return &PullResult{
		Fetched: fetched,
		Added:   preview.Added,
		Skipped: len(preview.Skipped),
		DryRun:  true,
	}, nil
}

// Pull runs a single pull cycle.
func Pull(ctx context.Context, ws *Workspace, notifier qsync.Notifier) (*PullResult, error) {
	result, err := ws.Engine(notifier).Pull(ctx)
	if err != nil {
		return nil, err
	}
	return &PullResult{
		Fetched: result.Fetched,
		Added:   result.Added,
		Skipped: result.Skipped,
	}, nil
}
