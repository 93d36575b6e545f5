// Package repository owns the in-memory quote collection and keeps it
// reconciled with a store.Store. Every mutation is persisted before it
// returns; a failed save rolls the collection back.
package repository

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"github.com/ruminaider/quotesync/internal/merge"
	"github.com/ruminaider/quotesync/internal/quote"
	"github.com/ruminaider/quotesync/internal/store"
)

// Repository is an ordered quote collection backed by a Store. It is safe for
// concurrent use; the lock is never held across I/O other than the store write
// that completes a mutation.
type Repository struct {
	mu     sync.Mutex
	store  store.Store
	quotes []quote.Quote
	intn   func(n int) int
	seed   []quote.Quote
	logger *zap.Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithRand sets the source used by PickRandom. intn must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(r *Repository) { r.intn = intn }
}

// WithSeed replaces the collection used when the store holds nothing.
func WithSeed(quotes []quote.Quote) Option {
	return func(r *Repository) { r.seed = quotes }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Repository) { r.logger = logger }
}

// New returns an empty repository over st. Call Init before use.
func New(st store.Store, opts ...Option) *Repository {
	r := &Repository{
		store:  st,
		intn:   rand.IntN,
		seed:   quote.Defaults(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init loads the collection from the store. When the store has nothing usable
// the seed collection is installed and persisted.
func (r *Repository) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if quotes, ok := r.store.LoadQuotes(); ok {
		r.quotes = quotes
		r.logger.Debug("loaded quotes", zap.Int("count", len(quotes)))
		return nil
	}

	r.quotes = append([]quote.Quote(nil), r.seed...)
	r.logger.Debug("seeded default quotes", zap.Int("count", len(r.quotes)))
	if err := r.store.SaveQuotes(r.quotes); err != nil {
		return fmt.Errorf("persisting default quotes: %w", err)
	}
	return nil
}

// Len returns the number of quotes.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.quotes)
}

// Snapshot returns a copy of the collection.
func (r *Repository) Snapshot() []quote.Quote {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]quote.Quote(nil), r.quotes...)
}

// Categories returns the distinct categories in first-seen order.
func (r *Repository) Categories() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return quote.Categories(r.quotes)
}

// Add appends a quote entered by the user. Blank fields yield a
// *quote.ValidationError and leave the collection unchanged.
func (r *Repository) Add(text, category string) (quote.Quote, error) {
	q, err := quote.New(text, category)
	if err != nil {
		return quote.Quote{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.commit(append(r.cloneLocked(), q)); err != nil {
		return quote.Quote{}, err
	}
	return q, nil
}

// ImportMany appends an externally-sourced batch with both fields trimmed. If
// any entry lacks text or category the whole batch is rejected with a
// *quote.FormatError.
func (r *Repository) ImportMany(quotes []quote.Quote) (int, error) {
	batch := make([]quote.Quote, 0, len(quotes))
	for i, q := range quotes {
		normalized, err := quote.New(q.Text, q.Category)
		if err != nil {
			return 0, &quote.FormatError{Index: i, Reason: "missing text or category"}
		}
		batch = append(batch, normalized)
	}
	if len(batch) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.commit(append(r.cloneLocked(), batch...)); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// ImportJSON decodes an exported document and appends its entries.
func (r *Repository) ImportJSON(src io.Reader) (int, error) {
	quotes, err := quote.Decode(src)
	if err != nil {
		return 0, err
	}
	return r.ImportMany(quotes)
}

// Export writes the collection as an indented JSON array.
func (r *Repository) Export(w io.Writer) error {
	return quote.Encode(w, r.Snapshot())
}

// MergeFromRemote applies the union merge to incoming and persists when
// anything was appended. It returns the appended quotes.
func (r *Repository) MergeFromRemote(incoming []quote.Quote) ([]quote.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := merge.Union(r.quotes, incoming)
	if !result.Changed() {
		return nil, nil
	}
	if err := r.commit(result.Merged); err != nil {
		return nil, err
	}
	return result.Added, nil
}

// PreviewMerge reports what MergeFromRemote would do without changing anything.
func (r *Repository) PreviewMerge(incoming []quote.Quote) merge.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return merge.Union(r.quotes, incoming)
}

// PickRandom returns a uniformly random quote among those matching filter.
// It returns false when nothing matches.
func (r *Repository) PickRandom(filter string) (quote.Quote, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidates := quote.Filter(r.quotes, filter)
	if len(candidates) == 0 {
		return quote.Quote{}, false
	}
	return candidates[r.intn(len(candidates))], true
}

// Filter returns the persisted filter. A filter naming a category that no
// longer exists resolves to quote.FilterAll.
func (r *Repository) Filter() string {
	value := r.store.LoadFilter()
	if value == quote.FilterAll {
		return value
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !quote.HasCategory(r.quotes, value) {
		r.logger.Debug("stored filter no longer matches a category", zap.String("filter", value))
		return quote.FilterAll
	}
	return value
}

// SetFilter validates and persists a new filter value.
func (r *Repository) SetFilter(value string) error {
	if value != quote.FilterAll {
		r.mu.Lock()
		known := quote.HasCategory(r.quotes, value)
		r.mu.Unlock()
		if !known {
			return &quote.ValidationError{Field: "filter", Reason: fmt.Sprintf("%q is not a known category", value)}
		}
	}
	if err := r.store.SaveFilter(value); err != nil {
		return fmt.Errorf("persisting filter: %w", err)
	}
	return nil
}

// commit persists next and installs it. Callers hold r.mu.
func (r *Repository) commit(next []quote.Quote) error {
	if err := r.store.SaveQuotes(next); err != nil {
		return fmt.Errorf("persisting quotes: %w", err)
	}
	r.quotes = next
	return nil
}

func (r *Repository) cloneLocked() []quote.Quote {
	out := make([]quote.Quote, len(r.quotes), len(r.quotes)+1)
	copy(out, r.quotes)
	return out
}
