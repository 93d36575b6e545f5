package commands

import (
	"go.uber.org/zap"

	"github.com/ruminaider/quotesync/internal/quote"
)

// ShowResult is what the display should render.
type ShowResult struct {
	Filter string
	Quote  quote.Quote
	Found  bool // false means "No quotes available."
}

// Show picks a random quote from category, or from the persisted filter when
// category is empty. A shown quote is remembered as the last quote.
func Show(ws *Workspace, category string) ShowResult {
	filter := category
	if filter == "" {
		filter = ws.Repo.Filter()
	}

	q, ok := ws.Repo.PickRandom(filter)
	if !ok {
		return ShowResult{Filter: filter}
	}
	if err := ws.Store.SaveLastQuote(q); err != nil {
		ws.Logger.Warn("remembering last quote", zap.Error(err))
	}
	return ShowResult{Filter: filter, Quote: q, Found: true}
}

// Last redisplays the last shown quote, falling back to a fresh pick when
// nothing has been shown yet.
func Last(ws *Workspace) ShowResult {
	if q, ok := ws.Store.LoadLastQuote(); ok {
		return ShowResult{Filter: ws.Repo.Filter(), Quote: q, Found: true}
	}
	return Show(ws, "")
}
