package search

import (
	"context"
	"sync"
	"time"

	"suriname/internal/page"
)

// State of a Composer between edits and fetches.
type State int

const (
	Idle State = iota
	Scheduled
	InFlight
	Settled
)

// DefaultInterval is how long a burst of query edits is allowed to
// settle before a fetch fires.
const DefaultInterval = 300 * time.Millisecond

const defaultPageSize = 10

// Fetch issues one search against the backend with the sanitized query
// and pagination merged in.
type Fetch[T any] func(ctx context.Context, q Query, pageIdx, size int) (page.Page[T], error)

// Composer owns the query, debounce, and pagination state of one list
// view. Every edit reschedules a single pending fetch; whatever values
// are current when the timer fires are what goes out. Responses apply
// only if no newer fetch has been dispatched since (last writer wins),
// so a slow early response can never clobber a fast later one.
type Composer[T any] struct {
	mu       sync.Mutex
	fetch    Fetch[T]
	onResult func(page.Page[T], error)
	interval time.Duration

	query   Query
	pageIdx int
	size    int

	state     State
	timer     *time.Timer
	gen       uint64
	corrected bool
	closed    bool

	ctx    context.Context
	cancel context.CancelFunc
}

// Option configures a Composer.
type Option[T any] func(*Composer[T])

// WithInterval overrides the debounce interval.
func WithInterval[T any](d time.Duration) Option[T] {
	return func(c *Composer[T]) { c.interval = d }
}

// WithPageSize overrides the page size.
func WithPageSize[T any](n int) Option[T] {
	return func(c *Composer[T]) { c.size = n }
}

// New builds a Composer. onResult is called once per settled fetch,
// outside the composer's lock, with either a normalized page or an
// error paired with an empty page.
func New[T any](fetch Fetch[T], onResult func(page.Page[T], error), opts ...Option[T]) *Composer[T] {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Composer[T]{
		fetch:    fetch,
		onResult: onResult,
		interval: DefaultInterval,
		query:    Query{},
		size:     defaultPageSize,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Update replaces the query and (re)schedules a fetch one interval out,
// cancelling any pending timer and orphaning any fetch still in flight
// for the superseded query. A new search always starts from page 0.
func (c *Composer[T]) Update(q Query) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.query = q
	c.pageIdx = 0
	if c.state == InFlight {
		c.gen++ // orphan the superseded fetch
	}
	c.schedule()
}

// SearchNow replaces the query, resets to page 0, and fires immediately,
// superseding any pending debounced fetch.
func (c *Composer[T]) SearchNow(q Query) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.query = q
	c.pageIdx = 0
	c.stopTimer()
	c.fireLocked()
	c.mu.Unlock()
}

// SetPage moves to a page index and fires immediately. Negative indexes
// clamp to 0.
func (c *Composer[T]) SetPage(idx int) {
	if idx < 0 {
		idx = 0
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.pageIdx = idx
	c.stopTimer()
	c.fireLocked()
	c.mu.Unlock()
}

// SetSize changes the page size, resets to page 0, and fires.
func (c *Composer[T]) SetSize(n int) {
	if n <= 0 {
		n = defaultPageSize
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.size = n
	c.pageIdx = 0
	c.stopTimer()
	c.fireLocked()
	c.mu.Unlock()
}

// Flush fires a pending scheduled fetch right away, if there is one.
func (c *Composer[T]) Flush() {
	c.mu.Lock()
	if c.closed || c.state != Scheduled {
		c.mu.Unlock()
		return
	}
	c.stopTimer()
	c.fireLocked()
	c.mu.Unlock()
}

// Page returns the current page index.
func (c *Composer[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageIdx
}

// State returns the composer's current state.
func (c *Composer[T]) CurrentState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close cancels any pending timer and in-flight fetch. Results arriving
// after Close are discarded; no callback fires for them.
func (c *Composer[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.stopTimer()
	c.gen++ // orphan anything in flight
	c.state = Idle
	c.mu.Unlock()
	c.cancel()
}

func (c *Composer[T]) schedule() {
	c.stopTimer()
	c.state = Scheduled
	c.timer = time.AfterFunc(c.interval, func() {
		c.mu.Lock()
		if c.closed || c.state != Scheduled {
			c.mu.Unlock()
			return
		}
		c.fireLocked()
		c.mu.Unlock()
	})
}

func (c *Composer[T]) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// fireLocked dispatches a fetch for the current query and pagination.
// Caller holds the lock. Each dispatch bumps the generation; a response
// is applied only while its generation is still the latest.
func (c *Composer[T]) fireLocked() {
	c.gen++
	c.corrected = false
	c.dispatchLocked()
}

func (c *Composer[T]) dispatchLocked() {
	gen := c.gen
	q := Sanitize(c.query)
	idx, size := c.pageIdx, c.size
	c.state = InFlight

	go func() {
		p, err := c.fetch(c.ctx, q, idx, size)
		c.settle(gen, p, err)
	}()
}

func (c *Composer[T]) settle(gen uint64, p page.Page[T], err error) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}

	if err == nil && !c.corrected && NeedsDriftCorrection(len(p.Content), p.TotalElements, c.pageIdx) {
		c.corrected = true
		c.pageIdx--
		c.gen++
		c.dispatchLocked()
		c.mu.Unlock()
		return
	}

	c.state = Settled
	cb := c.onResult
	c.mu.Unlock()

	if cb == nil {
		return
	}
	if err != nil {
		cb(page.Empty[T](), err)
		return
	}
	cb(p, nil)
}
