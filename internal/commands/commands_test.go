package commands_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/quotesync/internal/commands"
	"github.com/ruminaider/quotesync/internal/config"
	"github.com/ruminaider/quotesync/internal/paths"
	"github.com/ruminaider/quotesync/internal/quote"
	qsync "github.com/ruminaider/quotesync/internal/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_FirstRunSeedsDefaults(t *testing.T) {
	ws := setupWorkspace(t, "")
	assertDefaults(t, ws)
	assert.FileExists(t, filepath.Join(paths.StoreDir(ws.DataDir), "quotes.json"))
}

func TestOpen_ReadsConfigFile(t *testing.T) {
	t.Setenv(config.EnvRemoteURL, "")
	t.Setenv(config.EnvLogLevel, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(paths.ConfigFile(dir), []byte("store: sqlite\n"), 0644))

	ws, err := commands.Open(dir, nil)
	require.NoError(t, err)
	defer ws.Close()
	assert.Equal(t, "sqlite", ws.Config.Store)
	assertDefaults(t, ws)
}

func TestOpen_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(paths.ConfigFile(dir), []byte("store: nope\n"), 0644))

	_, err := commands.Open(dir, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestShow_RemembersLastQuote(t *testing.T) {
	ws := setupWorkspace(t, "")

	result := commands.Show(ws, "Life")
	require.True(t, result.Found)
	assert.Equal(t, "Life", result.Quote.Category)

	last := commands.Last(reopen(t, ws))
	assert.True(t, last.Found)
	assert.Equal(t, result.Quote, last.Quote)
}

func TestShow_UsesPersistedFilter(t *testing.T) {
	ws := setupWorkspace(t, "")
	require.NoError(t, commands.SetFilter(ws, "Motivation"))

	result := commands.Show(ws, "")
	assert.Equal(t, "Motivation", result.Filter)
	assert.Equal(t, "Do one thing every day that scares you.", result.Quote.Text)
}

func TestShow_NoQuotesAvailable(t *testing.T) {
	ws := setupWorkspace(t, "")
	result := commands.Show(ws, "Nonexistent")
	assert.False(t, result.Found)
}

func TestLast_FallsBackToRandom(t *testing.T) {
	ws := setupWorkspace(t, "")
	result := commands.Last(ws)
	assert.True(t, result.Found)
}

func TestAdd_PersistsAcrossRestart(t *testing.T) {
	ws := setupWorkspace(t, "")
	q, err := commands.Add(ws, "Stay hungry, stay foolish.", "Jobs")
	require.NoError(t, err)

	again := reopen(t, ws)
	assert.Equal(t, 4, again.Repo.Len())
	assert.Equal(t, q, again.Repo.Snapshot()[3])
}

func TestAdd_Validation(t *testing.T) {
	ws := setupWorkspace(t, "")
	_, err := commands.Add(ws, " ", "Jobs")
	assert.ErrorIs(t, err, quote.ErrValidation)
	assertDefaults(t, ws)
}

func TestFilter_SurvivesRestartWhileCategoryExists(t *testing.T) {
	ws := setupWorkspace(t, "")
	require.NoError(t, commands.SetFilter(ws, "Life"))

	state := commands.Filter(reopen(t, ws))
	assert.Equal(t, "Life", state.Current)
	assert.Equal(t, []string{"Inspiration", "Life", "Motivation"}, state.Categories)
}

func TestFilter_FallsBackAfterRestartWhenCategoryGone(t *testing.T) {
	ws := setupWorkspace(t, "")
	require.NoError(t, commands.SetFilter(ws, "Life"))
	require.NoError(t, ws.Store.SaveQuotes([]quote.Quote{{Text: "only", Category: "Work"}}))

	state := commands.Filter(reopen(t, ws))
	assert.Equal(t, quote.FilterAll, state.Current)
}

func TestExportImport_RoundTrip(t *testing.T) {
	source := setupWorkspace(t, "")
	_, err := commands.Add(source, "Stay hungry, stay foolish.", "Jobs")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "quotes.json")
	path, n, err := commands.Export(source, out)
	require.NoError(t, err)
	assert.Equal(t, out, path)
	assert.Equal(t, 4, n)

	target := setupWorkspace(t, "")
	imported, err := commands.Import(target, out)
	require.NoError(t, err)
	assert.Equal(t, 4, imported)
	assert.Equal(t, append(quote.Defaults(), source.Repo.Snapshot()...), target.Repo.Snapshot())
}

func TestExport_DefaultFileName(t *testing.T) {
	ws := setupWorkspace(t, "")
	t.Chdir(t.TempDir())

	path, _, err := commands.Export(ws, "")
	require.NoError(t, err)
	assert.Equal(t, "quotes.json", path)
	assert.FileExists(t, "quotes.json")
}

func TestImport_RejectsNonArray(t *testing.T) {
	ws := setupWorkspace(t, "")
	in := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"text":"x","category":"y"}`), 0644))

	_, err := commands.Import(ws, in)
	assert.ErrorIs(t, err, quote.ErrFormat)
	assertDefaults(t, ws)
}

func TestImport_MissingFile(t *testing.T) {
	ws := setupWorkspace(t, "")
	_, err := commands.Import(ws, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestPull_DuplicateRemoteTitle(t *testing.T) {
	rem := newFakeRemote(t, "Life is what happens when you're busy making other plans.")
	ws := setupWorkspace(t, rem.srv.URL)

	result, err := commands.Pull(context.Background(), ws, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Added)
	assert.Equal(t, 1, result.Skipped)
	assertDefaults(t, ws)
}

func TestPull_NewRemoteTitleNotifiesOnce(t *testing.T) {
	rem := newFakeRemote(t, "Stay hungry, stay foolish.")
	ws := setupWorkspace(t, rem.srv.URL)

	notified := 0
	result, err := commands.Pull(context.Background(), ws, qsync.NotifierFunc(func(added []quote.Quote) {
		notified++
	}))
	require.NoError(t, err)
	require.Len(t, result.Added, 1)
	assert.Equal(t, 1, notified)

	again := reopen(t, ws)
	assert.Equal(t, 4, again.Repo.Len())
	assert.Equal(t, "Server", again.Repo.Snapshot()[3].Category)
}

func TestPull_DryRunChangesNothing(t *testing.T) {
	rem := newFakeRemote(t, "Stay hungry, stay foolish.", "The best way to predict the future is to create it.")
	ws := setupWorkspace(t, rem.srv.URL)

	result, err := commands.PullDryRun(context.Background(), ws)
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 2, result.Fetched)
	assert.Len(t, result.Added, 1)
	assert.Equal(t, 1, result.Skipped)
	assertDefaults(t, ws)
}

func TestPull_RemoteFailure(t *testing.T) {
	rem := newFakeRemote(t, "x")
	rem.fail(http.StatusBadGateway)
	ws := setupWorkspace(t, rem.srv.URL)

	_, err := commands.Pull(context.Background(), ws, nil)
	require.Error(t, err)
	assertDefaults(t, ws)
}

func TestPush_SendsCollection(t *testing.T) {
	rem := newFakeRemote(t)
	ws := setupWorkspace(t, rem.srv.URL)

	n, err := commands.Push(context.Background(), ws)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, rem.posts(), 1)
	assert.Equal(t, quote.Defaults(), rem.posts()[0])
}

func TestPush_RemoteFailure(t *testing.T) {
	rem := newFakeRemote(t)
	rem.fail(http.StatusInternalServerError)
	ws := setupWorkspace(t, rem.srv.URL)

	_, err := commands.Push(context.Background(), ws)
	assert.Error(t, err)
	assertDefaults(t, ws)
}

func TestStatus(t *testing.T) {
	ws := setupWorkspace(t, "")
	result := commands.Status(ws)
	assert.Equal(t, 3, result.Quotes)
	assert.Equal(t, "file", result.Store)
	assert.Equal(t, quote.FilterAll, result.Filter)
	assert.Nil(t, result.LastQuote)

	commands.Show(ws, "")
	assert.NotNil(t, commands.Status(ws).LastQuote)
}

func TestInitConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	path, err := commands.InitConfig(dir, false)
	require.NoError(t, err)
	assert.Equal(t, paths.ConfigFile(dir), path)

	_, err = commands.InitConfig(dir, false)
	assert.Error(t, err)

	_, err = commands.InitConfig(dir, true)
	assert.NoError(t, err)
}
