package commands

import (
	"github.com/ruminaider/quotesync/internal/quote"
)

// StatusResult summarizes the local state.
type StatusResult struct {
	DataDir    string
	Store      string
	Quotes     int
	Categories []string
	Filter     string
	LastQuote  *quote.Quote
	ReadURL    string
	WriteURL   string
}

// Status reports the collection size, categories, filter and remote.
func Status(ws *Workspace) StatusResult {
	result := StatusResult{
		DataDir:    ws.DataDir,
		Store:      ws.Config.Store,
		Quotes:     ws.Repo.Len(),
		Categories: ws.Repo.Categories(),
		Filter:     ws.Repo.Filter(),
		ReadURL:    ws.Config.Remote.ReadURL,
		WriteURL:   ws.Config.Remote.WriteURL,
	}
	if q, ok := ws.Store.LoadLastQuote(); ok {
		result.LastQuote = &q
	}
	return result
}
