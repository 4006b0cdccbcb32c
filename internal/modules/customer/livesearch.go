package customer

import (
	"context"
	"sync"
	"time"

	"suriname/internal/backend"
	"suriname/internal/page"
	"suriname/internal/search"
)

// liveSearch keeps one composer per session for the autocomplete box,
// so a burst of keystrokes relayed by the UI turns into a single
// upstream call with the final keyword. Every waiter from the burst
// gets the settled result of the last keystroke.
type liveSearch struct {
	mu      sync.Mutex
	entries map[string]*liveEntry

	api      autocompleteAPI
	interval time.Duration
}

type autocompleteAPI interface {
	AutocompleteCustomers(ctx context.Context, keyword string) ([]backend.Customer, error)
}

type liveResult struct {
	items []backend.Customer
	err   error
}

type liveEntry struct {
	mu       sync.Mutex
	composer *search.Composer[backend.Customer]
	waiters  []chan liveResult
	token    string
	lastUsed time.Time
}

const liveEntryIdle = 5 * time.Minute

func newLiveSearch(api autocompleteAPI, interval time.Duration) *liveSearch {
	return &liveSearch{
		entries:  make(map[string]*liveEntry),
		api:      api,
		interval: interval,
	}
}

func (ls *liveSearch) entry(sessionID, token string) *liveEntry {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.sweepLocked()

	e, ok := ls.entries[sessionID]
	if !ok {
		e = &liveEntry{}
		e.composer = search.New(
			func(ctx context.Context, q search.Query, _, _ int) (page.Page[backend.Customer], error) {
				kw, _ := q["keyword"].(string)
				ctx = backend.WithToken(ctx, e.currentToken())
				items, err := ls.api.AutocompleteCustomers(ctx, kw)
				if err != nil {
					return page.Empty[backend.Customer](), err
				}
				return page.Page[backend.Customer]{Content: items, First: true, Last: true}, nil
			},
			e.broadcast,
			search.WithInterval[backend.Customer](ls.interval),
		)
		ls.entries[sessionID] = e
	}
	e.mu.Lock()
	e.token = token
	e.lastUsed = time.Now()
	e.mu.Unlock()
	return e
}

func (ls *liveSearch) sweepLocked() {
	cutoff := time.Now().Add(-liveEntryIdle)
	for id, e := range ls.entries {
		e.mu.Lock()
		idle := e.lastUsed.Before(cutoff)
		e.mu.Unlock()
		if idle {
			e.composer.Close()
			delete(ls.entries, id)
		}
	}
}

func (e *liveEntry) currentToken() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.token
}

func (e *liveEntry) wait() chan liveResult {
	ch := make(chan liveResult, 1)
	e.mu.Lock()
	e.waiters = append(e.waiters, ch)
	e.mu.Unlock()
	return ch
}

func (e *liveEntry) broadcast(p page.Page[backend.Customer], err error) {
	e.mu.Lock()
	waiters := e.waiters
	e.waiters = nil
	e.mu.Unlock()
	for _, ch := range waiters {
		ch <- liveResult{items: p.Content, err: err}
	}
}
