package commands_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/ruminaider/quotesync/internal/config"
	"github.com/ruminaider/quotesync/internal/quote"
	"github.com/ruminaider/quotesync/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemote serves a jsonplaceholder-style /posts endpoint.
type fakeRemote struct {
	mu      sync.Mutex
	records []remote.Record
	status  int
	posted  [][]quote.Quote
	srv     *httptest.Server
}

func newFakeRemote(t *testing.T, titles ...string) *fakeRemote {
	t.Helper()
	f := &fakeRemote{status: http.StatusOK}
	for i, title := range titles {
		f.records = append(f.records, remote.Record{ID: i + 1, UserID: 1, Title: title})
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeRemote) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status != http.StatusOK {
		w.WriteHeader(f.status)
		return
	}
	switch r.Method {
	case http.MethodGet:
		json.NewEncoder(w).Encode(f.records)
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		var quotes []quote.Quote
		json.Unmarshal(body, &quotes)
		f.posted = append(f.posted, quotes)
		w.WriteHeader(http.StatusCreated)
	}
}

func (f *fakeRemote) fail(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

func (f *fakeRemote) posts() [][]quote.Quote {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]quote.Quote(nil), f.posted...)
}

// setupWorkspace opens a workspace in a temp data dir pointed at remote.
func setupWorkspace(t *testing.T, remoteURL string) *commands.Workspace {
	t.Helper()
	cfg := config.Default()
	if remoteURL != "" {
		cfg.Remote.ReadURL = remoteURL + "/posts"
		cfg.Remote.WriteURL = remoteURL + "/posts"
	}
	ws, err := commands.OpenWithConfig(t.TempDir(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

// reopen simulates a restart by opening a new workspace over the same data dir.
func reopen(t *testing.T, ws *commands.Workspace) *commands.Workspace {
	t.Helper()
	require.NoError(t, ws.Close())
	again, err := commands.OpenWithConfig(ws.DataDir, ws.Config, nil)
	require.NoError(t, err)
	t.Cleanup(func() { again.Close() })
	return again
}

func assertDefaults(t *testing.T, ws *commands.Workspace) {
	t.Helper()
	assert.Equal(t, quote.Defaults(), ws.Repo.Snapshot())
}
