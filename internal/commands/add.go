package commands

import (
	"github.com/ruminaider/quotesync/internal/quote"
)

// Add appends a user-entered quote and returns it as stored.
func Add(ws *Workspace, text, category string) (quote.Quote, error) {
	q, err := ws.Repo.Add(text, category)
	if err != nil {
		return quote.Quote{}, err
	}
	ws.Logger.Debug("quote added")
	return q, nil
}
