package store

import (
	"sync"

	"github.com/ruminaider/quotesync/internal/quote"
)

// MemoryStore is a process-local Store. Values do not survive a restart.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) SaveQuotes(quotes []quote.Quote) error {
	data, err := encodeQuotes(quotes)
	if err != nil {
		return err
	}
	s.set(KeyQuotes, data)
	return nil
}

func (s *MemoryStore) LoadQuotes() ([]quote.Quote, bool) {
	data, ok := s.get(KeyQuotes)
	if !ok {
		return nil, false
	}
	quotes, err := decodeQuotes(data)
	if err != nil {
		return nil, false
	}
	return quotes, true
}

func (s *MemoryStore) SaveFilter(value string) error {
	s.set(KeyFilter, []byte(value))
	return nil
}

func (s *MemoryStore) LoadFilter() string {
	data, ok := s.get(KeyFilter)
	if !ok {
		return quote.FilterAll
	}
	return normalizeFilter(string(data))
}

func (s *MemoryStore) SaveLastQuote(q quote.Quote) error {
	data, err := encodeQuote(q)
	if err != nil {
		return err
	}
	s.set(KeyLastQuote, data)
	return nil
}

func (s *MemoryStore) LoadLastQuote() (quote.Quote, bool) {
	data, ok := s.get(KeyLastQuote)
	if !ok {
		return quote.Quote{}, false
	}
	q, err := decodeLastQuote(data)
	if err != nil {
		return quote.Quote{}, false
	}
	return q, true
}

func (s *MemoryStore) Close() error { return nil }

// SetRaw stores an arbitrary encoded value under key. Tests use it to plant
// corrupt data.
func (s *MemoryStore) SetRaw(key string, data []byte) {
	s.set(key, data)
}

func (s *MemoryStore) set(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), data...)
}

func (s *MemoryStore) get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.values[key]
	return data, ok
}
