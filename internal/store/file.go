package store

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ruminaider/quotesync/internal/quote"
)

const (
	quotesFile    = "quotes.json"
	filterFile    = "filter"
	lastQuoteFile = "last-quote.json"
)

// FileStore keeps each value in its own file under a directory.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &FileStore{dir: dir, logger: nopIfNil(logger)}, nil
}

// Dir returns the directory the store writes to.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) SaveQuotes(quotes []quote.Quote) error {
	data, err := encodeQuotes(quotes)
	if err != nil {
		return err
	}
	return s.write(quotesFile, data)
}

func (s *FileStore) LoadQuotes() ([]quote.Quote, bool) {
	data, ok := s.read(quotesFile)
	if !ok {
		return nil, false
	}
	quotes, err := decodeQuotes(data)
	if err != nil {
		s.logger.Warn("ignoring unreadable stored quotes", zap.String("file", s.path(quotesFile)), zap.Error(err))
		return nil, false
	}
	return quotes, true
}

func (s *FileStore) SaveFilter(value string) error {
	return s.write(filterFile, []byte(value))
}

func (s *FileStore) LoadFilter() string {
	data, ok := s.read(filterFile)
	if !ok {
		return quote.FilterAll
	}
	return normalizeFilter(string(data))
}

func (s *FileStore) SaveLastQuote(q quote.Quote) error {
	data, err := encodeQuote(q)
	if err != nil {
		return err
	}
	return s.write(lastQuoteFile, data)
}

func (s *FileStore) LoadLastQuote() (quote.Quote, bool) {
	data, ok := s.read(lastQuoteFile)
	if !ok {
		return quote.Quote{}, false
	}
	q, err := decodeLastQuote(data)
	if err != nil {
		s.logger.Warn("ignoring unreadable last quote", zap.String("file", s.path(lastQuoteFile)), zap.Error(err))
		return quote.Quote{}, false
	}
	return q, true
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *FileStore) read(name string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("reading store file", zap.String("file", s.path(name)), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// write replaces name atomically so a crash never leaves a torn value behind.
func (s *FileStore) write(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
