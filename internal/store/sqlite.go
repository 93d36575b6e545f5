package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/ruminaider/quotesync/internal/quote"
)

// DBFile is the database file name used by NewSQLiteStore.
const DBFile = "quotes.db"

const schemaSQL = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
}

// SQLiteStore keeps every value as a row in a single key/value table.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// NewSQLiteStore opens (creating if needed) dir/quotes.db.
func NewSQLiteStore(dir string, logger *zap.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return OpenSQLite(filepath.Join(dir, DBFile), logger)
}

// OpenSQLite opens the database at path and applies the schema.
func OpenSQLite(path string, logger *zap.Logger) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("open sqlite store: empty path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range sqlitePragmas {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configure sqlite %q: %w", stmt, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &SQLiteStore{db: db, path: path, logger: nopIfNil(logger)}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) SaveQuotes(quotes []quote.Quote) error {
	data, err := encodeQuotes(quotes)
	if err != nil {
		return err
	}
	return s.put(KeyQuotes, string(data))
}

func (s *SQLiteStore) LoadQuotes() ([]quote.Quote, bool) {
	value, ok := s.get(KeyQuotes)
	if !ok {
		return nil, false
	}
	quotes, err := decodeQuotes([]byte(value))
	if err != nil {
		s.logger.Warn("ignoring unreadable stored quotes", zap.String("db", s.path), zap.Error(err))
		return nil, false
	}
	return quotes, true
}

func (s *SQLiteStore) SaveFilter(value string) error {
	return s.put(KeyFilter, value)
}

func (s *SQLiteStore) LoadFilter() string {
	value, ok := s.get(KeyFilter)
	if !ok {
		return quote.FilterAll
	}
	return normalizeFilter(value)
}

func (s *SQLiteStore) SaveLastQuote(q quote.Quote) error {
	data, err := encodeQuote(q)
	if err != nil {
		return err
	}
	return s.put(KeyLastQuote, string(data))
}

func (s *SQLiteStore) LoadLastQuote() (quote.Quote, bool) {
	value, ok := s.get(KeyLastQuote)
	if !ok {
		return quote.Quote{}, false
	}
	q, err := decodeLastQuote([]byte(value))
	if err != nil {
		s.logger.Warn("ignoring unreadable last quote", zap.String("db", s.path), zap.Error(err))
		return quote.Quote{}, false
	}
	return q, true
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PutRaw writes value under key without any encoding.
func (s *SQLiteStore) PutRaw(key, value string) error {
	return s.put(key, value)
}

func (s *SQLiteStore) put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("reading store key", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value, true
}
