package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"suriname/internal/page"
)

type fetchCall struct {
	query   Query
	pageIdx int
	size    int
}

// recorder collects fetch calls and settled results so the tests can
// wait on them instead of sleeping.
type recorder struct {
	mu      sync.Mutex
	calls   []fetchCall
	results chan page.Page[string]
	errs    chan error
	respond func(fetchCall) (page.Page[string], error)
}

func newRecorder(respond func(fetchCall) (page.Page[string], error)) *recorder {
	if respond == nil {
		respond = func(fetchCall) (page.Page[string], error) {
			return page.Empty[string](), nil
		}
	}
	return &recorder{
		results: make(chan page.Page[string], 16),
		errs:    make(chan error, 16),
		respond: respond,
	}
}

func (r *recorder) fetch(_ context.Context, q Query, pageIdx, size int) (page.Page[string], error) {
	call := fetchCall{query: q, pageIdx: pageIdx, size: size}
	r.mu.Lock()
	r.calls = append(r.calls, call)
	r.mu.Unlock()
	return r.respond(call)
}

func (r *recorder) onResult(p page.Page[string], err error) {
	r.results <- p
	r.errs <- err
}

func (r *recorder) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recorder) call(i int) fetchCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[i]
}

func waitResult(t *testing.T, r *recorder) (page.Page[string], error) {
	t.Helper()
	select {
	case p := <-r.results:
		return p, <-r.errs
	case <-time.After(2 * time.Second):
		t.Fatal("no result within deadline")
		return page.Page[string]{}, nil
	}
}

func TestComposer_CoalescesEditBurst(t *testing.T) {
	rec := newRecorder(nil)
	c := New[string](rec.fetch, rec.onResult, WithInterval[string](30*time.Millisecond))
	defer c.Close()

	c.Update(Query{"name": "k"})
	c.Update(Query{"name": "ki"})
	c.Update(Query{"name": "kim"})

	waitResult(t, rec)

	assert.Equal(t, 1, rec.callCount())
	assert.Equal(t, "kim", rec.call(0).query["name"])
	assert.Equal(t, 0, rec.call(0).pageIdx)
}

func TestComposer_SanitizesBeforeFetch(t *testing.T) {
	rec := newRecorder(nil)
	c := New[string](rec.fetch, rec.onResult, WithInterval[string](10*time.Millisecond))
	defer c.Close()

	c.SearchNow(Query{"name": "kim", "phone": "", "tags": []string{}})

	waitResult(t, rec)

	got := rec.call(0).query
	assert.Equal(t, "kim", got["name"])
	assert.NotContains(t, got, "phone")
	assert.NotContains(t, got, "tags")
}

func TestComposer_SearchNowSupersedesPending(t *testing.T) {
	rec := newRecorder(nil)
	c := New[string](rec.fetch, rec.onResult, WithInterval[string](time.Hour))
	defer c.Close()

	c.Update(Query{"name": "slow"})
	c.SearchNow(Query{"name": "now"})

	waitResult(t, rec)

	// the debounced fetch never fires; no second result arrives
	assert.Equal(t, 1, rec.callCount())
	assert.Equal(t, "now", rec.call(0).query["name"])
}

func TestComposer_UpdateResetsPage(t *testing.T) {
	rec := newRecorder(nil)
	c := New[string](rec.fetch, rec.onResult, WithInterval[string](10*time.Millisecond))
	defer c.Close()

	c.SetPage(4)
	waitResult(t, rec)
	assert.Equal(t, 4, rec.call(0).pageIdx)

	c.Update(Query{"name": "kim"})
	waitResult(t, rec)
	assert.Equal(t, 0, rec.call(1).pageIdx)
}

func TestComposer_SetSizeFiresWithNewSize(t *testing.T) {
	rec := newRecorder(nil)
	c := New[string](rec.fetch, rec.onResult, WithInterval[string](10*time.Millisecond))
	defer c.Close()

	c.SetSize(50)
	waitResult(t, rec)

	assert.Equal(t, 50, rec.call(0).size)
	assert.Equal(t, 0, rec.call(0).pageIdx)
}

func TestComposer_LastWriterWins(t *testing.T) {
	gate := make(chan struct{})
	rec := newRecorder(nil)
	rec.respond = func(call fetchCall) (page.Page[string], error) {
		if call.query["name"] == "stale" {
			<-gate // first response held until the second has settled
			return page.Page[string]{Content: []string{"stale"}, First: true, Last: true}, nil
		}
		return page.Page[string]{Content: []string{"fresh"}, First: true, Last: true}, nil
	}

	c := New[string](rec.fetch, rec.onResult, WithInterval[string](10*time.Millisecond))
	defer c.Close()

	c.SearchNow(Query{"name": "stale"})
	for rec.callCount() == 0 {
		time.Sleep(time.Millisecond)
	}
	c.SearchNow(Query{"name": "fresh"})

	p, err := waitResult(t, rec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, p.Content)

	close(gate)

	// the stale response must be discarded, not delivered late
	select {
	case p := <-rec.results:
		t.Fatalf("stale result delivered: %v", p.Content)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestComposer_UpdateOrphansInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	gate := make(chan struct{})
	rec := newRecorder(nil)
	rec.respond = func(call fetchCall) (page.Page[string], error) {
		if call.query["name"] == "old" {
			close(started)
			<-gate
			return page.Page[string]{Content: []string{"old"}, First: true, Last: true}, nil
		}
		return page.Page[string]{Content: []string{"new"}, First: true, Last: true}, nil
	}

	c := New[string](rec.fetch, rec.onResult, WithInterval[string](10*time.Millisecond))
	defer c.Close()

	c.SearchNow(Query{"name": "old"})
	<-started
	c.Update(Query{"name": "new"})
	close(gate) // old response lands while the new fetch is still debounced

	p, err := waitResult(t, rec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"new"}, p.Content)
	assert.Equal(t, 2, rec.callCount())

	// the superseded response never reaches the callback
	select {
	case p := <-rec.results:
		t.Fatalf("superseded result delivered: %v", p.Content)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestComposer_DriftCorrectionRetriesOnce(t *testing.T) {
	rec := newRecorder(nil)
	rec.respond = func(call fetchCall) (page.Page[string], error) {
		if call.pageIdx == 2 {
			// page drifted past the end after a delete
			return page.Page[string]{TotalElements: 11, TotalPages: 2, Content: []string{}}, nil
		}
		return page.Page[string]{TotalElements: 11, TotalPages: 2, Number: call.pageIdx, Content: []string{"row"}}, nil
	}

	c := New[string](rec.fetch, rec.onResult, WithInterval[string](10*time.Millisecond))
	defer c.Close()

	c.SetPage(2)

	p, err := waitResult(t, rec)
	assert.NoError(t, err)
	assert.Equal(t, []string{"row"}, p.Content)
	assert.Equal(t, 2, rec.callCount())
	assert.Equal(t, 1, rec.call(1).pageIdx)
	assert.Equal(t, 1, c.Page())
}

func TestComposer_DriftCorrectionBoundedToOneStep(t *testing.T) {
	rec := newRecorder(nil)
	rec.respond = func(call fetchCall) (page.Page[string], error) {
		// backend keeps claiming rows exist but every page is empty
		return page.Page[string]{TotalElements: 99, Content: []string{}}, nil
	}

	c := New[string](rec.fetch, rec.onResult, WithInterval[string](10*time.Millisecond))
	defer c.Close()

	c.SetPage(5)

	p, err := waitResult(t, rec)
	assert.NoError(t, err)
	assert.Empty(t, p.Content)
	// one original fetch plus exactly one correction, never a cascade
	assert.Equal(t, 2, rec.callCount())
}

func TestComposer_NoDriftOnPageZero(t *testing.T) {
	rec := newRecorder(nil)
	rec.respond = func(call fetchCall) (page.Page[string], error) {
		return page.Page[string]{TotalElements: 4, Content: []string{}}, nil
	}

	c := New[string](rec.fetch, rec.onResult, WithInterval[string](10*time.Millisecond))
	defer c.Close()

	c.SearchNow(Query{})

	waitResult(t, rec)
	assert.Equal(t, 1, rec.callCount())
}

func TestComposer_ErrorYieldsEmptyPage(t *testing.T) {
	rec := newRecorder(nil)
	rec.respond = func(fetchCall) (page.Page[string], error) {
		return page.Page[string]{}, context.DeadlineExceeded
	}

	c := New[string](rec.fetch, rec.onResult, WithInterval[string](10*time.Millisecond))
	defer c.Close()

	c.SearchNow(Query{})

	p, err := waitResult(t, rec)
	assert.Error(t, err)
	assert.NotNil(t, p.Content)
	assert.Empty(t, p.Content)
	assert.Zero(t, p.TotalElements)
}

func TestComposer_CloseDropsPendingFetch(t *testing.T) {
	rec := newRecorder(nil)
	c := New[string](rec.fetch, rec.onResult, WithInterval[string](20*time.Millisecond))

	c.Update(Query{"name": "kim"})
	c.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, rec.callCount())
	assert.Equal(t, Idle, c.CurrentState())
}

func TestComposer_CloseDiscardsInFlightResult(t *testing.T) {
	started := make(chan struct{})
	gate := make(chan struct{})
	rec := newRecorder(func(fetchCall) (page.Page[string], error) {
		close(started)
		<-gate
		return page.Page[string]{Content: []string{"late"}}, nil
	})

	c := New[string](rec.fetch, rec.onResult, WithInterval[string](10*time.Millisecond))
	c.SearchNow(Query{})
	<-started
	c.Close()
	close(gate)

	select {
	case <-rec.results:
		t.Fatal("result delivered after Close")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestComposer_StateTransitions(t *testing.T) {
	rec := newRecorder(nil)
	c := New[string](rec.fetch, rec.onResult, WithInterval[string](time.Hour))
	defer c.Close()

	assert.Equal(t, Idle, c.CurrentState())

	c.Update(Query{"name": "kim"})
	assert.Equal(t, Scheduled, c.CurrentState())

	c.Flush()
	waitResult(t, rec)
	assert.Equal(t, Settled, c.CurrentState())
}
