package commands

import (
	"fmt"
	"os"

	"github.com/ruminaider/quotesync/internal/quote"
)

// Export writes the collection to path (quotes.json when empty) and returns
// the number of quotes written.
func Export(ws *Workspace, path string) (string, int, error) {
	if path == "" {
		path = quote.ExportFileName
	}
	snapshot := ws.Repo.Snapshot()

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("creating export file: %w", err)
	}
	if err := quote.Encode(f, snapshot); err != nil {
		f.Close()
		return "", 0, err
	}
	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("closing export file: %w", err)
	}
	return path, len(snapshot), nil
}

// Import appends every quote in the JSON file at path. A malformed file is
// rejected as a whole.
func Import(ws *Workspace, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	n, err := ws.Repo.ImportJSON(f)
	if err != nil {
		return 0, fmt.Errorf("importing %s: %w", path, err)
	}
	return n, nil
}
