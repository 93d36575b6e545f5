// Package sync reconciles the local quote collection with the remote
// endpoint. Pull and push run as independent periodic tasks: a pull fetches a
// bounded page of remote records and union-merges them into the repository;
// a push sends the whole collection outward and never feeds anything back.
package sync

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ruminaider/quotesync/internal/quote"
	"github.com/ruminaider/quotesync/internal/remote"
)

// Defaults for Options fields left at zero.
const (
	DefaultPullInterval = 30 * time.Second
	DefaultPushInterval = 30 * time.Second
	DefaultPageLimit    = 5
)

// Repository is the part of the quote repository the engine needs.
type Repository interface {
	Snapshot() []quote.Quote
	MergeFromRemote(incoming []quote.Quote) ([]quote.Quote, error)
}

// Notifier is told when a pull appended quotes.
type Notifier interface {
	QuotesUpdated(added []quote.Quote)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(added []quote.Quote)

func (f NotifierFunc) QuotesUpdated(added []quote.Quote) { f(added) }

// NopNotifier ignores every notification.
type NopNotifier struct{}

func (NopNotifier) QuotesUpdated([]quote.Quote) {}

// Options controls scheduling and the shape of pulls.
type Options struct {
	PullInterval   time.Duration
	PushInterval   time.Duration
	PageLimit      int
	ServerCategory string
}

func (o Options) withDefaults() Options {
	if o.PullInterval <= 0 {
		o.PullInterval = DefaultPullInterval
	}
	if o.PushInterval <= 0 {
		o.PushInterval = DefaultPushInterval
	}
	if o.PageLimit <= 0 {
		o.PageLimit = DefaultPageLimit
	}
	if o.ServerCategory == "" {
		o.ServerCategory = remote.DefaultServerCategory
	}
	return o
}

// State is the phase a cycle is in.
type State int32

const (
	Idle State = iota
	Pulling
	Merging
	Pushing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pulling:
		return "pulling"
	case Merging:
		return "merging"
	case Pushing:
		return "pushing"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// PullResult summarizes one pull cycle.
type PullResult struct {
	Fetched int           // records returned by the remote
	Added   []quote.Quote // quotes appended to the collection
	Skipped int           // converted quotes dropped as duplicates
}

// PushResult summarizes one push cycle.
type PushResult struct {
	Sent int
}

// Engine runs pull and push cycles against a transport.
type Engine struct {
	repo      Repository
	transport remote.Transport
	opts      Options
	notifier  Notifier
	logger    *zap.Logger

	pullState atomic.Int32
	pushState atomic.Int32
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

func WithNotifier(n Notifier) EngineOption {
	return func(e *Engine) { e.notifier = n }
}

func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// NewEngine wires an engine. Zero-valued options fall back to defaults.
func NewEngine(repo Repository, transport remote.Transport, opts Options, engineOpts ...EngineOption) *Engine {
	e := &Engine{
		repo:      repo,
		transport: transport,
		opts:      opts.withDefaults(),
		notifier:  NopNotifier{},
		logger:    zap.NewNop(),
	}
	for _, opt := range engineOpts {
		opt(e)
	}
	if e.notifier == nil {
		e.notifier = NopNotifier{}
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// Options returns the effective options.
func (e *Engine) Options() Options { return e.opts }

// PullState reports where the pull cycle currently is.
func (e *Engine) PullState() State { return State(e.pullState.Load()) }

// PushState reports where the push cycle currently is.
func (e *Engine) PushState() State { return State(e.pushState.Load()) }

// Fetch reads one page from the remote and converts it to quotes tagged with
// the server category. It does not touch the repository.
func (e *Engine) Fetch(ctx context.Context) ([]quote.Quote, int, error) {
	records, err := e.transport.Read(ctx, e.opts.PageLimit)
	if err != nil {
		return nil, 0, err
	}
	return remote.ToQuotes(records, e.opts.ServerCategory), len(records), nil
}

// Pull runs one pull cycle: read, convert, merge. A failure at any step is
// logged and leaves the collection untouched; the next scheduled pull is the
// only retry.
func (e *Engine) Pull(ctx context.Context) (PullResult, error) {
	e.pullState.Store(int32(Pulling))
	defer e.pullState.Store(int32(Idle))

	start := time.Now()
	incoming, fetched, err := e.Fetch(ctx)
	if err != nil {
		e.logger.Warn("pull failed", zap.Error(err))
		return PullResult{}, fmt.Errorf("pull: %w", err)
	}

	e.pullState.Store(int32(Merging))
	added, err := e.repo.MergeFromRemote(incoming)
	if err != nil {
		e.logger.Error("merging remote quotes failed", zap.Error(err))
		return PullResult{}, fmt.Errorf("pull: merge: %w", err)
	}

	result := PullResult{
		Fetched: fetched,
		Added:   added,
		Skipped: len(incoming) - len(added),
	}
	e.logger.Info("pull complete",
		zap.Int("fetched", result.Fetched),
		zap.Int("added", len(result.Added)),
		zap.Int("skipped", result.Skipped),
		zap.Duration("took", time.Since(start)))

	if len(added) > 0 {
		e.notifier.QuotesUpdated(added)
	}
	return result, nil
}

// Push sends a snapshot of the whole collection. The outcome is logged and
// returned; local state is never modified.
func (e *Engine) Push(ctx context.Context) (PushResult, error) {
	e.pushState.Store(int32(Pushing))
	defer e.pushState.Store(int32(Idle))

	snapshot := e.repo.Snapshot()
	if err := e.transport.Write(ctx, snapshot); err != nil {
		e.logger.Warn("push failed", zap.Int("quotes", len(snapshot)), zap.Error(err))
		return PushResult{}, fmt.Errorf("push: %w", err)
	}
	e.logger.Info("push complete", zap.Int("quotes", len(snapshot)))
	return PushResult{Sent: len(snapshot)}, nil
}
