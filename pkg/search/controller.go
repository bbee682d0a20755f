package search

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/urlscout/urlscout-cli/pkg/dataset"
	"github.com/urlscout/urlscout-cli/pkg/debounce"
	"github.com/urlscout/urlscout-cli/pkg/models"
)

// DefaultDelay is the debounce interval used when none is configured
const DefaultDelay = time.Second

// QueryState is the observable state of an incremental search
type QueryState struct {
	RawInput       string
	DebouncedInput string
	IsLoading      bool
	HasMatch       bool
	Results        []models.URLRecord

	// Version increases with every change; listeners never see it go back
	Version uint64
}

// Options configures a Controller
type Options struct {
	Delay    time.Duration
	Logger   *slog.Logger
	OnChange func(QueryState)
}

// request is the token for one provider call. Only the current request may
// write results.
type request struct {
	id     string
	query  string
	cancel context.CancelFunc
}

// Controller runs the debounce → cancel → fetch → apply pipeline and owns
// the resulting QueryState.
type Controller struct {
	provider  dataset.Provider
	debouncer *debounce.Debouncer[string]
	logger    *slog.Logger
	onChange  func(QueryState)

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	state   QueryState
	current *request
	closed  bool

	notifyMu  sync.Mutex
	delivered uint64
}

// NewController creates a controller with an empty query and no results
func NewController(provider dataset.Provider, opts Options) *Controller {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		provider: provider,
		logger:   opts.Logger,
		onChange: opts.OnChange,
		ctx:      ctx,
		cancel:   cancel,
		state: QueryState{
			HasMatch: true,
		},
	}
	c.debouncer = debounce.New(opts.Delay, c.OnDebouncedValueReady)
	return c
}

// Start runs the initial empty-query fetch
func (c *Controller) Start() {
	c.OnDebouncedValueReady("")
}

// OnQueryChange records the visible input and schedules a debounced fetch
func (c *Controller) OnQueryChange(text string) {
	c.mu.Lock()
	if c.closed || text == c.state.RawInput {
		c.mu.Unlock()
		return
	}
	c.state.RawInput = text
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
	c.debouncer.Push(text)
}

// OnDebouncedValueReady cancels the outstanding request and issues a new one
// for text.
func (c *Controller) OnDebouncedValueReady(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	if prev := c.current; prev != nil {
		prev.cancel()
		c.logger.Debug("cancelled previous request", "request_id", prev.id, "query", prev.query)
	}

	ctx, cancel := context.WithCancel(c.ctx)
	req := &request{
		id:     uuid.NewString(),
		query:  text,
		cancel: cancel,
	}
	c.current = req
	c.state.DebouncedInput = text
	c.state.IsLoading = true
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("search started", "request_id", req.id, "query", text)
	c.notify(snapshot)

	go c.run(ctx, req)
}

func (c *Controller) run(ctx context.Context, req *request) {
	records, err := c.provider.Search(ctx, req.query)

	c.mu.Lock()
	if c.closed || c.current != req {
		c.mu.Unlock()
		req.cancel()
		c.logger.Debug("discarded superseded response", "request_id", req.id, "query", req.query)
		return
	}
	c.current = nil
	req.cancel()

	if err != nil {
		c.state.IsLoading = false
		snapshot := c.snapshotLocked()
		c.mu.Unlock()

		if !errors.Is(err, context.Canceled) {
			c.logger.Warn("search failed", "request_id", req.id, "query", req.query, "error", err)
		}
		c.notify(snapshot)
		return
	}

	c.state.Results = records
	c.state.HasMatch = !(req.query != "" && len(records) == 0)
	c.state.IsLoading = false
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("search completed", "request_id", req.id, "query", req.query, "matches", len(records))
	c.notify(snapshot)
}

// Reset clears the query and results, then lets the debounced empty query
// fetch the whole dataset again.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if prev := c.current; prev != nil {
		prev.cancel()
		c.current = nil
	}
	c.state.RawInput = ""
	c.state.Results = nil
	c.state.HasMatch = true
	c.state.IsLoading = false
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
	c.debouncer.Push("")
}

// Flush fires a pending debounced query without waiting
func (c *Controller) Flush() {
	c.debouncer.Flush()
}

// State returns a snapshot of the current state
func (c *Controller) State() QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Results = models.CloneRecords(c.state.Results)
	return s
}

// Close cancels the in-flight request and the pending debounce timer.
// After Close returns the state no longer changes.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.current != nil {
		c.current.cancel()
		c.current = nil
	}
	c.mu.Unlock()

	c.cancel()
	c.debouncer.Stop()
}

// snapshotLocked bumps the version and copies the state. c.mu must be held.
func (c *Controller) snapshotLocked() QueryState {
	c.state.Version++
	s := c.state
	s.Results = models.CloneRecords(c.state.Results)
	return s
}

// notify delivers snapshots in version order, dropping any that a newer
// delivery already overtook.
func (c *Controller) notify(s QueryState) {
	if c.onChange == nil {
		return
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	if s.Version <= c.delivered {
		return
	}
	c.delivered = s.Version
	c.onChange(s)
}
