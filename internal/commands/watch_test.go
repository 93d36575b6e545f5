package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/ruminaider/quotesync/internal/quote"
	qsync "github.com/ruminaider/quotesync/internal/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_PullsAndPushesUntilCancelled(t *testing.T) {
	rem := newFakeRemote(t, "Stay hungry, stay foolish.")
	ws := setupWorkspace(t, rem.srv.URL)
	ws.Config.Sync.PullInterval = 20 * time.Millisecond
	ws.Config.Sync.PushInterval = 20 * time.Millisecond

	updates := make(chan []quote.Quote, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- commands.Watch(ctx, ws, qsync.NotifierFunc(func(added []quote.Quote) { updates <- added }))
	}()

	select {
	case added := <-updates:
		assert.Equal(t, []quote.Quote{{Text: "Stay hungry, stay foolish.", Category: "Server"}}, added)
	case <-time.After(2 * time.Second):
		t.Fatal("no update notification")
	}
	require.Eventually(t, func() bool { return len(rem.posts()) >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}

	posts := rem.posts()
	assert.Len(t, posts[0], 4, "first push follows the first pull")
	assert.Len(t, updates, 0, "later pulls of the same data do not notify again")
}
