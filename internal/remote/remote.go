// Package remote talks to the external quote endpoint. The remote schema has
// no notion of categories, so fetched records are tagged with a fixed
// category when converted to quotes.
package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/ruminaider/quotesync/internal/quote"
)

// DefaultServerCategory tags every quote that originated remotely.
const DefaultServerCategory = "Server"

// Record is one entry returned by the read endpoint. Only Title is used.
type Record struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId,omitempty"`
	Title  string `json:"title"`
	Body   string `json:"body,omitempty"`
}

// Transport reads a bounded page of records and writes the full collection.
type Transport interface {
	Read(ctx context.Context, limit int) ([]Record, error)
	Write(ctx context.Context, quotes []quote.Quote) error
}

// ToQuotes converts records to quotes tagged with category. Records with a
// blank title are skipped.
func ToQuotes(records []Record, category string) []quote.Quote {
	quotes := make([]quote.Quote, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Title) == "" {
			continue
		}
		quotes = append(quotes, quote.Quote{Text: rec.Title, Category: category})
	}
	return quotes
}

// TransportError reports a failed or unsuccessful remote call.
type TransportError struct {
	Op         string // "read" or "write"
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote %s %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("remote %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
