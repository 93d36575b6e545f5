// Package store persists the quote collection, the last-used filter and the
// last shown quote. Loads are fail-soft: missing or unreadable values are
// reported as absent rather than as errors.
package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ruminaider/quotesync/internal/quote"
)

// Store is durable key/value storage scoped to one application instance.
type Store interface {
	// SaveQuotes overwrites the stored collection.
	SaveQuotes(quotes []quote.Quote) error
	// LoadQuotes returns the stored collection, or false when nothing usable
	// is stored.
	LoadQuotes() ([]quote.Quote, bool)
	SaveFilter(value string) error
	// LoadFilter returns the stored filter, or quote.FilterAll when absent.
	LoadFilter() string
	SaveLastQuote(q quote.Quote) error
	LoadLastQuote() (quote.Quote, bool)
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Keys under which the key/value backends store each value.
const (
	KeyQuotes    = "quotes"
	KeyFilter    = "filter"
	KeyLastQuote = "lastQuote"
)

// Open creates the store for backend rooted at dir.
func Open(backend, dir string, logger *zap.Logger) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dir, logger)
	case BackendSQLite:
		return NewSQLiteStore(dir, logger)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

func encodeQuotes(quotes []quote.Quote) ([]byte, error) {
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	data, err := json.Marshal(quotes)
	if err != nil {
		return nil, fmt.Errorf("marshaling quotes: %w", err)
	}
	return data, nil
}

func decodeQuotes(data []byte) ([]quote.Quote, error) {
	var quotes []quote.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, err
	}
	if quotes == nil {
		return nil, fmt.Errorf("stored value is not an array")
	}
	for i, q := range quotes {
		if q.Text == "" || q.Category == "" {
			return nil, fmt.Errorf("stored quote %d has no text or category", i)
		}
	}
	return quotes, nil
}

func encodeQuote(q quote.Quote) ([]byte, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("marshaling quote: %w", err)
	}
	return data, nil
}

func decodeLastQuote(data []byte) (quote.Quote, error) {
	var q quote.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return quote.Quote{}, err
	}
	if q.Text == "" {
		return quote.Quote{}, fmt.Errorf("stored quote has no text")
	}
	return q, nil
}

// normalizeFilter maps a blank stored filter to quote.FilterAll. Any other
// value is returned unchanged so it still matches its category exactly.
func normalizeFilter(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return quote.FilterAll
	}
	return raw
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
